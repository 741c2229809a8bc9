package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"customer-stats/internal/app"
	"customer-stats/internal/models"
	"customer-stats/internal/shared/configs"
	"customer-stats/internal/shared/loggers"
	"customer-stats/internal/sources"

	"github.com/spf13/cobra"
)

// stdinArg selects standard input as the log source.
const stdinArg = "-"

// IngestOptions holds options for the ingest command.
type IngestOptions struct {
	BatchSize       int
	CloudWatchGroup string
	Since           string
	Filter          string
	Region          string
	Profile         string
}

// newLogsClient is swapped in tests.
var newLogsClient = func(ctx context.Context, region, profile string) (sources.LogsAPI, error) {
	return sources.NewCloudWatchLogsClient(ctx, region, profile)
}

func newIngestCommand(root *rootOptions) *cobra.Command {
	opts := &IngestOptions{}

	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: "Parse log lines and store them",
		Long: `Parse log lines and store them in the record database.

The source is a local file (plain, .gz or .zst), standard input ("-") or a
CloudWatch Logs group. The ingest summary is printed as JSON.

Example:
  customer-stats ingest ./api_requests.log
  customer-stats ingest ./api_requests.log.gz --batch-size 500
  cat api_requests.log | customer-stats ingest -
  customer-stats ingest --cloudwatch-group /prod/api --since 2024-01-15 --region us-east-1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, root.ConfigPath, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", 0, "Records per storage write (defaults to ingestion.batch_size)")
	cmd.Flags().StringVar(&opts.CloudWatchGroup, "cloudwatch-group", "", "Read from this CloudWatch Logs group instead of a file")
	cmd.Flags().StringVar(&opts.Since, "since", "", "CloudWatch start time, YYYY-MM-DD (UTC) or RFC3339")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "CloudWatch Logs filter pattern")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region (defaults to cloudwatch.region)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "AWS shared config profile (defaults to cloudwatch.profile)")

	return cmd
}

func runIngest(cmd *cobra.Command, configPath string, args []string, opts *IngestOptions) error {
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()

	source, err := buildSource(ctx, cmd.InOrStdin(), args, opts, cfg)
	if err != nil {
		return err
	}

	batchSize := opts.BatchSize
	if batchSize == 0 {
		batchSize = cfg.Ingestion.BatchSize
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer closeApp(application)

	logger := application.Logger().With().Str(loggers.FieldComponent, "cli").Logger()
	ctx = logger.WithContext(ctx)

	summary, ingestErr := application.IngestionService().Ingest(ctx, source, batchSize)
	if summary != nil {
		if err := writeJSON(cmd.OutOrStdout(), summary); err != nil {
			return errors.Join(ingestErr, fmt.Errorf("failed to write summary: %w", err))
		}
	}
	if ingestErr != nil {
		return fmt.Errorf("ingestion failed: %w", ingestErr)
	}
	return nil
}

// buildSource picks exactly one of a file argument or a CloudWatch group.
func buildSource(ctx context.Context, stdin io.Reader, args []string, opts *IngestOptions, cfg *configs.Config) (sources.LineSource, error) {
	hasFile := len(args) == 1
	hasGroup := opts.CloudWatchGroup != ""

	switch {
	case hasFile && hasGroup:
		return nil, errors.New("specify either a log file or --cloudwatch-group, not both")
	case hasFile && args[0] == stdinArg:
		return sources.NewReaderSource("stdin", stdin), nil
	case hasFile:
		return sources.NewFileSource(args[0]), nil
	case !hasGroup:
		return nil, errors.New("a log file or --cloudwatch-group is required")
	}

	since, err := parseSince(opts.Since)
	if err != nil {
		return nil, err
	}

	region := opts.Region
	if region == "" {
		region = cfg.CloudWatch.Region
	}
	profile := opts.Profile
	if profile == "" {
		profile = cfg.CloudWatch.Profile
	}

	client, err := newLogsClient(ctx, region, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return sources.NewCloudWatchSource(client, sources.CloudWatchQuery{
		LogGroup:      opts.CloudWatchGroup,
		FilterPattern: opts.Filter,
		StartTime:     since,
	}), nil
}

// parseSince accepts a UTC calendar date or an RFC3339 timestamp. Empty means unbounded.
func parseSince(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(models.DateLayout, value, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since %q: expected YYYY-MM-DD or RFC3339", value)
	}
	return t.UTC(), nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
