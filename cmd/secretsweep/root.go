package secretsweep

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagTable   bool
	flagNoColor bool
	flagFailOn  string
	flagNoCache bool
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the secretsweep CLI.
var rootCmd = &cobra.Command{
	Use:           "secretsweep",
	Short:         "Find hardcoded secrets in a directory tree",
	Long:          "Secretsweep scans a file or directory for hardcoded secrets using pattern rules and Shannon-entropy analysis, and reports each occurrence with its location and severity.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the secretsweep CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "render findings as a table")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit 1 if any finding is at or above this severity (info|low|medium|high|critical)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the incremental scan cache")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log skipped files and traversal diagnostics")
}
