// Package report renders a Finding sequence for humans. The text form is the
// contract output handed back to the invoking agent; table and JSON forms
// exist for terminal and CI use.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/secretsweep/secretsweep/internal/types"
)

// Options controls rendering. Findings are printed in the order the scan
// produced them; ordering is part of the scan contract, not the renderer's.
type Options struct {
	Color bool
}

var (
	styleCritical = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleLow      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeading  = lipgloss.NewStyle().Bold(true)
)

func severityLabel(s types.Severity, color bool) string {
	if !color {
		return string(s)
	}
	switch s {
	case types.SevCritical:
		return styleCritical.Render(string(s))
	case types.SevHigh:
		return styleHigh.Render(string(s))
	case types.SevMedium:
		return styleMedium.Render(string(s))
	case types.SevLow:
		return styleLow.Render(string(s))
	default:
		return styleInfo.Render(string(s))
	}
}

// RenderText writes the report: a single success line when findings is
// empty, otherwise a heading and one block per finding with the file, line,
// type, severity, and the literal matched value. Values are deliberately not
// redacted; the report is what the operator acts on.
func RenderText(w io.Writer, findings []types.Finding, opts Options) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
		return
	}
	heading := fmt.Sprintf("Potential secrets found: %d", len(findings))
	if opts.Color {
		heading = styleHeading.Render(heading)
	}
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w)
	for _, f := range findings {
		fmt.Fprintf(w, "%s:%d\n", f.File, f.Line)
		fmt.Fprintf(w, "  type:     %s\n", f.Type)
		fmt.Fprintf(w, "  severity: %s\n", severityLabel(f.Severity, opts.Color))
		fmt.Fprintf(w, "  value:    %s\n", f.Value)
		fmt.Fprintln(w)
	}
}

// RenderTable writes findings as a bordered table.
func RenderTable(w io.Writer, findings []types.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
		return
	}
	tbl := tablewriter.NewTable(w)
	tbl.Header("FILE", "LINE", "TYPE", "SEVERITY", "VALUE")
	for _, f := range findings {
		_ = tbl.Append(f.File, strconv.Itoa(f.Line), f.Type, string(f.Severity), f.Value)
	}
	_ = tbl.Render()
}

// Summary returns the one-line severity breakdown appended under reports.
func Summary(findings []types.Finding) string {
	counts := map[types.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
	}
	out := fmt.Sprintf("Findings: %d", len(findings))
	for _, s := range []types.Severity{types.SevCritical, types.SevHigh, types.SevMedium, types.SevLow, types.SevInfo, types.SevNone} {
		if counts[s] > 0 {
			out += fmt.Sprintf(" %s:%d", s, counts[s])
		}
	}
	return out
}

// ShouldFail reports whether any finding meets or exceeds the given severity
// threshold label. An empty or unknown threshold never fails.
func ShouldFail(findings []types.Finding, threshold string) bool {
	min, ok := types.ParseSeverity(threshold)
	if !ok {
		return false
	}
	for _, f := range findings {
		if f.Severity.Rank() >= min.Rank() {
			return true
		}
	}
	return false
}
