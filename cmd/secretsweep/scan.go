package secretsweep

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/secretsweep/secretsweep/internal/audit"
	"github.com/secretsweep/secretsweep/internal/config"
	"github.com/secretsweep/secretsweep/internal/engine"
	"github.com/secretsweep/secretsweep/internal/report"
	"github.com/secretsweep/secretsweep/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagPath     string
	flagIgnore   string
	flagMaxBytes int64
	flagMaxDepth int
	flagNoAudit  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a path for secrets",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "file or directory to scan")
	cmd.Flags().StringVar(&flagIgnore, "ignore", "", "comma-separated glob patterns to exclude")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "directory nesting bound (0 = default)")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not record the scan in the audit journal")
}

func splitGlobs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runScan(cmd *cobra.Command, _ []string) error {
	root := flagPath
	if root == "" {
		root = "."
	}

	// Config precedence: CLI > local > global.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if abs, err := filepath.Abs(root); err == nil {
		if c, err := config.LoadLocal(abs); err == nil {
			lcfg = c
		}
	}

	log := newLogger(flagVerbose)
	opts := engine.Options{
		Root:           root,
		IgnorePatterns: splitGlobs(pickString(flagIgnore, cmd.Flags().Changed("ignore"), lcfg.Ignore, gcfg.Ignore)),
		MaxBytes:       pickInt64(flagMaxBytes, cmd.Flags().Changed("max-bytes"), lcfg.MaxBytes, gcfg.MaxBytes),
		MaxDepth:       pickInt(flagMaxDepth, cmd.Flags().Changed("max-depth"), lcfg.MaxDepth, gcfg.MaxDepth),
		NoCache:        pickBool(flagNoCache, rootCmd.PersistentFlags().Changed("no-cache"), lcfg.NoCache, gcfg.NoCache),
		Logger:         log,
	}

	res, err := engine.ScanWithStats(opts)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	findings := res.Findings
	if findings == nil {
		findings = []types.Finding{} // no `null` in JSON
	}

	if !flagNoAudit {
		if st, err := os.Stat(root); err == nil && st.IsDir() {
			rec := audit.NewRecord(root, findings, res.FilesScanned, res.Duration)
			if err := audit.New(root).Append(rec); err != nil {
				log.WithError(err).Warn("cannot write audit journal")
			}
		}
	}

	noColor := pickBool(flagNoColor, rootCmd.PersistentFlags().Changed("no-color"), lcfg.NoColor, gcfg.NoColor)
	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	case flagTable:
		report.RenderTable(os.Stdout, findings)
	default:
		report.RenderText(os.Stdout, findings, report.Options{Color: colorEnabled(noColor)})
	}

	if !flagJSON {
		fmt.Fprintf(os.Stderr, "%s (files: %d, %.2fs)\n",
			report.Summary(findings), res.FilesScanned, res.Duration.Seconds())
	}

	failOn := pickString(flagFailOn, rootCmd.PersistentFlags().Changed("fail-on"), lcfg.FailOn, gcfg.FailOn)
	if report.ShouldFail(findings, failOn) {
		os.Exit(1)
	}
	return nil
}
