package commands

import "github.com/spf13/cobra"

func (c *CLI) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <package>",
		Short: "Edit the record of a managed package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Edit(cmd.Context(), args[0])
		},
	}
}
