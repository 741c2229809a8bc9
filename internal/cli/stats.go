package cli

import (
	"fmt"

	"customer-stats/internal/app"
	"customer-stats/internal/shared/configs"
	"customer-stats/internal/shared/loggers"

	"github.com/spf13/cobra"
)

func newStatsCommand(root *rootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "stats <customer-id>",
		Short: "Print daily statistics for a customer",
		Long: `Print daily statistics for a customer as JSON, one entry per calendar
day (UTC) starting at --from.

Example:
  customer-stats stats cust_42 --from 2024-01-15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := configs.LoadConfig(root.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			application, err := app.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer closeApp(application)

			logger := application.Logger().With().Str(loggers.FieldComponent, "cli").Logger()
			ctx = logger.WithContext(ctx)

			stats, err := application.StatsQueryService().GetStats(ctx, args[0], from)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to report, YYYY-MM-DD (required)")

	return cmd
}
