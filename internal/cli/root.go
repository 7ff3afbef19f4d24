package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/config"
)

var (
	cfg     *config.Config
	backend Backend
)

// boundFlags are the persistent flags resolved through config.Loader
var boundFlags = []string{
	config.KeyDictionary,
	config.KeyDistribution,
	config.KeyEncoding,
	config.KeyServer,
	config.KeyPlayers,
	config.KeySeed,
	config.KeyOutput,
	config.KeyVerbose,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	loader := config.NewLoader()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "wordtiles",
		Short: "Best word finder for letter tile games",
		Long: `wordtiles finds the highest scoring dictionary word a rack of letter
tiles can spell, blanks included, and plays simulated games with it.

Commands run in-process against the configured dictionary, or against a
wordtiles server when --server is set.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loader.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			b, err := openBackend(cmd.Context(), cfg, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
			if err != nil {
				return err
			}
			backend = b
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return backend.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default ./wordtiles.yaml)")
	flags.String(config.KeyDictionary, "", "Word list file (env: WORDTILES_DICTIONARY)")
	flags.String(config.KeyDistribution, "", "Letter distribution CSV (env: WORDTILES_DISTRIBUTION)")
	flags.String(config.KeyEncoding, "", "Word list encoding: utf-8, latin1 (env: WORDTILES_ENCODING)")
	flags.String(config.KeyServer, "", "Server URL, commands run in-process when empty (env: WORDTILES_SERVER)")
	flags.Int(config.KeyPlayers, 0, "Players per game (env: WORDTILES_PLAYERS)")
	flags.Uint64(config.KeySeed, 0, "Seed for reproducible games, 0 for random (env: WORDTILES_SEED)")
	flags.StringP(config.KeyOutput, "o", "", "Output format: text, json")
	flags.BoolP(config.KeyVerbose, "v", false, "Verbose output")
	for _, key := range boundFlags {
		if err := loader.BindFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newDictionaryCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		format := config.OutputText
		if cfg != nil {
			format = cfg.Output
		}
		NewOutput(format, os.Stdout, os.Stderr).PrintError(err)
		os.Exit(1)
	}
}

func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	if cfg.Server != "" {
		return NewClient(cfg.Server), nil
	}
	return OpenLocal(ctx, cfg, logger)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// output formats command results for cmd
func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
