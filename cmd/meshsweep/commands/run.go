package commands

import (
	"github.com/spf13/cobra"
	"github.com/volthaus/meshsweep/internal/app"
	"github.com/volthaus/meshsweep/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [plan]",
		Short: "Execute the mesh refinement sweep described by a plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planPath := domain.SweepFileName
			if len(args) > 0 {
				planPath = args[0]
			}

			noCache, _ := cmd.Flags().GetBool("no-cache")
			workers, _ := cmd.Flags().GetInt("workers")
			onFailure, _ := cmd.Flags().GetString("on-failure")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Run(cmd.Context(), planPath, app.RunOptions{
				NoCache:   noCache,
				Workers:   workers,
				OnFailure: onFailure,
				Watch:     watch,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the run cache and force execution")
	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent runs (0 uses the plan's setting)")
	cmd.Flags().String("on-failure", "", "Failure policy: continue or abort (overrides the plan)")
	cmd.Flags().Bool("watch", false, "Re-run the sweep whenever the plan file changes")
	return cmd
}
