package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/panelcam/panelcam/pkg/tools"
)

// newToolsCmd creates the tools command: validate a tool table and list
// its contents.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools [tool table file]",
		Short: "Validate and list a tool table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tools.Load(args[0])
			if err != nil {
				return err
			}
			printToolTable(os.Stdout, args[0], table)
			return nil
		},
	}
}
