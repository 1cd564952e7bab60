// internal/cli/show.go
package tachos

import "github.com/spf13/cobra"

// showCmd groups read-only inspection commands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for inspecting application state",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
