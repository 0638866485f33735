package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/moree/internal/app"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	var opts app.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the recorded install reasons to the system",
		Long: "Mark recorded dependencies as dependencies. Optionally install missing\n" +
			"explicit packages and remove explicit packages that are not managed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.WithInstall, "with-install", false, "Install explicit packages that are missing")
	cmd.Flags().BoolVar(&opts.WithUninstall, "with-uninstall", false, "Remove explicit packages that are not managed")
	cmd.Flags().BoolVar(&opts.Sync, "sync", false, "Shorthand for --with-install --with-uninstall")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print the plan without running it")

	return cmd
}
