package secretsweep

import (
	"fmt"
	"os"

	"github.com/secretsweep/secretsweep/internal/audit"
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show past scans recorded in the audit journal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			records, err := audit.New(root).History()
			if err != nil {
				return fmt.Errorf("no scan history for %s: %w", root, err)
			}
			for i, rec := range records {
				if i >= flagHistoryLimit {
					break
				}
				fmt.Fprintf(os.Stdout, "%s  findings=%d files=%d duration=%s\n",
					rec.Timestamp.Format("2006-01-02 15:04:05"), rec.TotalFindings, rec.FilesScanned, rec.Duration)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "show at most this many records")
	rootCmd.AddCommand(cmd)
}
