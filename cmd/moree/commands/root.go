// Package commands implements the CLI commands for moree.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/moree/internal/app"
	"go.trai.ch/moree/internal/build"
)

// CLI represents the command line interface for moree.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	global  app.GlobalOptions
}

// Application represents the application logic interface.
type Application interface {
	Setup(ctx context.Context, opts app.GlobalOptions) error
	Add(ctx context.Context, packages []string) error
	Apply(ctx context.Context, opts app.ApplyOptions) error
	Diff(ctx context.Context, all bool) error
	Edit(ctx context.Context, name string) error
	Query(ctx context.Context, opts app.QueryOptions) error
	Managed(ctx context.Context) error
	Unmanaged(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "moree",
		Short:         "Manage packages and their explicit installation reasons",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.global.DataPath, "data", "", "Path of the state file (default: XDG data dir)")
	flags.StringVar(&c.global.ConfigPath, "config", "", "Path of the config file (default: XDG config dir)")
	flags.BoolVar(&c.global.JSONLogs, "json-logs", false, "Write logs as JSON")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Setup(cmd.Context(), c.global)
	}

	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newEditCmd())
	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newManagedCmd())
	rootCmd.AddCommand(c.newUnmanagedCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
