package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.Health(cmd.Context())
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newDictionaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dictionary",
		Short: "Describe the loaded word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := backend.Dictionary(cmd.Context())
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
