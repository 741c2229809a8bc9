// Package cli provides the command-line interface for customer-stats.
package cli

import (
	"fmt"
	"os"

	"customer-stats/internal/shared/loggers"

	"github.com/spf13/cobra"
)

// DefaultConfigPath is read when --config is not given.
const DefaultConfigPath = "./configs/configs.yml"

type rootOptions struct {
	ConfigPath string
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors keeps cobra from printing it first.
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "customer-stats",
		Short: "Ingest customer access logs and serve daily request statistics",
		Long: `customer-stats parses API access log lines, stores them in SQLite and
computes per-customer daily statistics (success/failure counts, uptime and
latency percentiles).

Log line format:
  2024-01-15 10:23:01 cust_42 /v1/resource 200 0.042`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", DefaultConfigPath, "Path to the YAML config file")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newIngestCommand(opts))
	rootCmd.AddCommand(newStatsCommand(opts))

	return rootCmd
}

type closableApp interface {
	Logger() loggers.Logger
	Close() error
}

// closeApp releases the app at the end of a one-shot command, logging a close failure.
func closeApp(application closableApp) {
	if err := application.Close(); err != nil {
		logger := application.Logger()
		logger.Warn().Err(err).Msg("failed to close app")
	}
}
