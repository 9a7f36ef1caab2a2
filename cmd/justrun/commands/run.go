package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/justrun/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [-- args...]",
		Short: "Rebuild the entry artifact if needed, then run it",
		Long: "Hashes the declared inputs, runs the build command when they differ from the\n" +
			"cache record, then invokes the entry artifact. Every argument is forwarded\n" +
			"to the artifact unchanged.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, domain.RequireAll)
			if err != nil {
				return err
			}

			outcome, err := c.app.Run(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			if outcome.Payload != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), outcome.Payload)
			}
			return nil
		},
	}
}
