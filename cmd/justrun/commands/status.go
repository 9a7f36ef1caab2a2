package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/justrun/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the entry artifact is up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.options(cmd, domain.RequireInputs)
			if err != nil {
				return err
			}

			decision, err := c.app.Status(cmd.Context(), opts)
			if err != nil {
				return err
			}

			state := "stale"
			if decision.Unchanged() {
				state = "fresh"
			}
			recorded := decision.Previous.String()
			if decision.Previous.IsZero() {
				recorded = "(none)"
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, state)
			_, _ = fmt.Fprintf(out, "current:  %s\n", decision.Digest)
			_, _ = fmt.Fprintf(out, "recorded: %s\n", recorded)
			return nil
		},
	}
}
