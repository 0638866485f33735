package commands

import "github.com/spf13/cobra"

func (c *CLI) newManagedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "managed",
		Short: "List packages recorded as explicitly installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Managed(cmd.Context())
		},
	}
}

func (c *CLI) newUnmanagedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmanaged",
		Short: "List explicitly installed packages without a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Unmanaged(cmd.Context())
		},
	}
}
