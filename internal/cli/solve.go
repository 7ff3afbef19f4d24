package cli

import (
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <rack>",
		Short: "Find the best word for a rack",
		Long: `Find the highest scoring word a rack can spell. Use ? or * for blanks.
Accented letters are folded, so "zèbre?" and "ZEBRE?" are the same rack.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.Solve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <word>",
		Short: "Count the points of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.Score(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
