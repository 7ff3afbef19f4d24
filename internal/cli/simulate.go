package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/request"
)

func newSimulateCmd() *cobra.Command {
	var games, parallel int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a batch of games and summarize them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games <= 0 {
				return fmt.Errorf("--games must be positive, got %d", games)
			}

			result, err := backend.Simulate(cmd.Context(), request.SimulateRequest{
				Games:    games,
				Parallel: parallel,
				Players:  cfg.Players,
				Seed:     cfg.SeedPtr(),
			})
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&games, "games", 10, "Number of games to play")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "Games played at once")

	return cmd
}
