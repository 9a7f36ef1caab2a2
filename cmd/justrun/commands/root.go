// Package commands implements the CLI commands for justrun.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/justrun/internal/app"
	"go.trai.ch/justrun/internal/build"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/engine/orchestrator"
)

// CLI represents the command line interface for justrun.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   *optionFlags
}

// Application represents the application logic interface.
type Application interface {
	LoadOptions(cwd, configPath string, need domain.Requirement, overrides ...app.Override) (*domain.Options, error)
	Run(ctx context.Context, opts *domain.Options, args []string) (orchestrator.Outcome, error)
	Hash(ctx context.Context, opts *domain.Options) (domain.Digest, error)
	Status(ctx context.Context, opts *domain.Options) (orchestrator.Decision, error)
	Clean(ctx context.Context, opts *domain.Options) error
	Watch(ctx context.Context, opts *domain.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "justrun",
		Short:         "Rebuild an artifact only when its inputs changed, then run it",
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
		flags:   bindOptionFlags(rootCmd),
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// options resolves the options from the config file and the flags of cmd,
// checked against what the command needs.
func (c *CLI) options(cmd *cobra.Command, need domain.Requirement) (*domain.Options, error) {
	cwd, err := c.flags.cwd()
	if err != nil {
		return nil, err
	}
	return c.app.LoadOptions(cwd, c.flags.config, need, c.flags.overrides(cmd, cwd)...)
}
