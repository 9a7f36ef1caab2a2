package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/justrun/internal/core/domain"
)

func (c *CLI) newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Print the digest of the declared inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.options(cmd, domain.RequireInputs)
			if err != nil {
				return err
			}

			digest, err := c.app.Hash(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), digest)
			return nil
		},
	}
}
