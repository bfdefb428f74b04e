package secretsweep

import (
	"fmt"
	"os"

	"github.com/secretsweep/secretsweep/internal/rules"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the pattern rule set",
		Run: func(_ *cobra.Command, _ []string) {
			for _, r := range rules.Default() {
				fmt.Fprintf(os.Stdout, "%-24s %-8s %s\n", r.Type, r.Severity, r.Pattern.String())
			}
			fmt.Fprintf(os.Stdout, "%-24s %-8s entropy >= 4.0 over [A-Za-z0-9/+=]{20,}\n",
				rules.TypeHighEntropy, "Low")
			fmt.Fprintf(os.Stdout, "%-24s %-8s any rule match inside a .env file\n",
				rules.TypeLocalEnv, "Info")
		},
	}
	rootCmd.AddCommand(cmd)
}
