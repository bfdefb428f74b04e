package core

import (
	"io"
	"os"

	"github.com/secretsweep/secretsweep/internal/engine"
	"github.com/secretsweep/secretsweep/internal/report"
	"github.com/secretsweep/secretsweep/internal/types"
)

// Re-export selected internal types as a stable public API surface. These
// are type aliases so callers can depend on a stable import path.
type (
	Options  = engine.Options
	Result   = engine.Result
	Finding  = types.Finding
	Severity = types.Severity
)

// Scan runs a secret scan. An empty Options.Root scans the process working
// directory, the default for agent-invoked scans.
func Scan(opts Options) ([]Finding, error) {
	if opts.Root == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.Root = wd
		}
	}
	return engine.Scan(opts)
}

// ScanWithStats is Scan with file counts and timing attached.
func ScanWithStats(opts Options) (Result, error) {
	if opts.Root == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.Root = wd
		}
	}
	return engine.ScanWithStats(opts)
}

// Report writes the human-readable text report for findings: the exact
// payload handed back to an invoking agent.
func Report(w io.Writer, findings []Finding) {
	report.RenderText(w, findings, report.Options{})
}
