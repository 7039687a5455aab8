package cmd

import (
	"github.com/corey/kmpgrep/internal/config"
	"github.com/corey/kmpgrep/internal/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Every call gets fresh flag state seeded
// from config.Defaults, so environment overrides are read at construction.
func NewRootCmd() *cobra.Command {
	opts := config.Defaults()
	logFormat := logger.FromEnv().Format

	rootCmd := &cobra.Command{
		Use:          "kmpgrep",
		Short:        "Linear-time multi-pattern substring search",
		SilenceUsage: true,
		Long: "Finds all, the first N, or the last N occurrences of one or more patterns " +
			"in a text or file using Knuth-Morris-Pratt search, and highlights them.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.Options{
				Level:  opts.LogLevel,
				Format: logFormat,
				Writer: cmd.ErrOrStderr(),
			})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level: trace, debug, info, warn, error, off")
	pf.StringVar(&opts.DBPath, "db", opts.DBPath, "Pattern-set database path")

	rootCmd.AddCommand(newSearchCmd(&opts))
	rootCmd.AddCommand(newWatchCmd(&opts))
	rootCmd.AddCommand(newSetsCmd(&opts))
	rootCmd.AddCommand(newConfigCmd(&opts))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
