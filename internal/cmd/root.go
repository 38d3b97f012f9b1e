package cmd

import (
	"fmt"
	"os"

	"github.com/cinedeck/cli/pkg/config"
	cerrors "github.com/cinedeck/cli/pkg/errors"
	"github.com/cinedeck/cli/pkg/logger"
	"github.com/cinedeck/cli/pkg/output"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "cinedeck",
	Short: "CineDeck - browse a movie catalog from the terminal",
	Long: `CineDeck is a command-line client for a movie-catalog backend.
Search, filter and sort the catalog, keep a local favorites list, and
fetch per-movie recommendations (content-based or collaborative).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		if !output.ValidateOutputFormat(outputFmt) {
			fmt.Fprintf(os.Stderr, "Error: invalid output format %q (use text, table, or json)\n", outputFmt)
			os.Exit(1)
		}
		_ = config.SetString("output.format", outputFmt)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, cerrors.FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/cinedeck/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
