package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/request"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Game commands",
	}

	cmd.AddCommand(newGamesPlayCmd())
	cmd.AddCommand(newGamesGetCmd())
	cmd.AddCommand(newGamesListCmd())
	cmd.AddCommand(newGamesDeleteCmd())

	return cmd
}

func newGamesPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one game and print its transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.PlayGame(cmd.Context(), request.CreateGameRequest{
				Players: cfg.Players,
				Seed:    cfg.SeedPtr(),
			})
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGamesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.GetGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGamesListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.ListGames(cmd.Context(), limit)
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of games")

	return cmd
}

func newGamesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.DeleteGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
