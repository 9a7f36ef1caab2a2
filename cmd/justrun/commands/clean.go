package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/justrun/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Delete the cache record so the next run rebuilds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.options(cmd, domain.RequireWorkingDir)
			if err != nil {
				return err
			}
			return c.app.Clean(cmd.Context(), opts)
		},
	}
}
