package commands

import (
	"github.com/spf13/cobra"
	"github.com/volthaus/meshsweep/internal/core/domain"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan]",
		Short: "Check a plan file without running any simulations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planPath := domain.SweepFileName
			if len(args) > 0 {
				planPath = args[0]
			}
			return c.app.Validate(planPath)
		},
	}
}
