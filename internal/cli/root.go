package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "equatix",
		Short: "Two-player equation placement game",
		Long: `equatix is a two-player game played on a grid. Players take turns placing
digit, operator and '=' tiles to build true equations across rows and
columns, scoring points for every equation they complete.

Play hot-seat or against a bot, replay a scripted game, or check an
expression with the same evaluator the game uses.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.Seeded = true
			}
			return cfg.Validate()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Layout, "layout", cfg.Layout, "Board layout: standard, legacy (env: EQUATIX_LAYOUT)")
	rootCmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the tile shuffle, for reproducible games (env: EQUATIX_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: EQUATIX_OUTPUT)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Color, "color", cfg.Color, "Colored board output (env: EQUATIX_COLOR)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: EQUATIX_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newLayoutCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
