package commands

import "github.com/spf13/cobra"

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [packages...]",
		Short: "Classify installed packages interactively",
		Long: "Ask whether each package was installed explicitly and record the answer.\n" +
			"Without arguments every explicitly installed package is visited.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Add(cmd.Context(), args)
		},
	}
}
