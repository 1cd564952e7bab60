// internal/cli/show_config.go
package tachos

import (
	"os"

	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the merged configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowConfig(os.Stdout)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
