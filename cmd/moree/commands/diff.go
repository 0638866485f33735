package commands

import "github.com/spf13/cobra"

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show packages whose install reason differs from the recorded one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Diff(cmd.Context(), all)
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Also show missing and unmanaged packages")
	return cmd
}
