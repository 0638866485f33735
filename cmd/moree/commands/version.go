package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/moree/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		// Overrides the root hook: printing the version needs no config.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "moree version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
