// Package core is a small, stable facade over secretsweep's internal engine
// for external integrations — in particular the agent-tool collaborator that
// invokes a scan and relays the text report. It deliberately re-exports a
// narrow API surface so integrators never import internal packages.
//
// Example:
//
//	findings, err := core.Scan(core.Options{Root: "."})
//	if err != nil { /* handle */ }
//	core.Report(os.Stdout, findings)
package core
