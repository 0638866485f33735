package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/moree/internal/app"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	var opts app.QueryOptions

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List managed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Query(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Information, "information", "i", false, "Show install reason and memo")
	cmd.Flags().BoolVarP(&opts.Explicit, "explicit", "e", false, "Only explicitly installed packages")
	cmd.Flags().BoolVarP(&opts.Deps, "deps", "d", false, "Only packages installed as dependencies")

	return cmd
}
