package sources

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// LogsAPI is the subset of the CloudWatch Logs API the source calls.
type LogsAPI interface {
	FilterLogEvents(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error)
}

// NewCloudWatchLogsClient loads AWS configuration from the default chain.
// Empty region or profile fall back to the SDK's own resolution.
func NewCloudWatchLogsClient(ctx context.Context, region, profile string) (*cloudwatchlogs.Client, error) {
	var cfgOpts []func(*config.LoadOptions) error
	if region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(region))
	}
	if profile != "" {
		cfgOpts = append(cfgOpts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, err
	}
	return cloudwatchlogs.NewFromConfig(cfg), nil
}

// CloudWatchQuery selects the events of one log group.
type CloudWatchQuery struct {
	LogGroup      string
	FilterPattern string    // optional
	StartTime     time.Time // zero means unbounded
	EndTime       time.Time // zero means unbounded
}

// CloudWatchSource reads event messages of a log group as log lines.
// Multi-line messages are split into one line per row.
type CloudWatchSource struct {
	client LogsAPI
	query  CloudWatchQuery
}

func NewCloudWatchSource(client LogsAPI, query CloudWatchQuery) *CloudWatchSource {
	return &CloudWatchSource{client: client, query: query}
}

func (s *CloudWatchSource) Name() string {
	return "cloudwatch:" + s.query.LogGroup
}

// Open fetches the first page so that an unreachable or unknown log group is
// reported before any line is processed.
func (s *CloudWatchSource) Open(ctx context.Context) (LineReader, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: %s: no client", ErrSourceUnavailable, s.Name())
	}
	if s.query.LogGroup == "" {
		return nil, fmt.Errorf("%w: empty log group", ErrSourceUnavailable)
	}

	r := &cloudWatchReader{client: s.client, query: s.query}
	if err := r.fetch(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.Name(), err)
	}
	return r, nil
}

type cloudWatchReader struct {
	client  LogsAPI
	query   CloudWatchQuery
	pending []string
	next    *string
	done    bool
}

func (r *cloudWatchReader) Next(ctx context.Context) (string, error) {
	for len(r.pending) == 0 {
		if r.done {
			return "", io.EOF
		}
		if err := r.fetch(ctx); err != nil {
			return "", fmt.Errorf("filter log events: %w", err)
		}
	}
	line := r.pending[0]
	r.pending = r.pending[1:]
	return line, nil
}

func (r *cloudWatchReader) Close() error {
	r.pending = nil
	r.done = true
	return nil
}

func (r *cloudWatchReader) fetch(ctx context.Context) error {
	input := &cloudwatchlogs.FilterLogEventsInput{
		LogGroupName: aws.String(r.query.LogGroup),
		NextToken:    r.next,
	}
	if r.query.FilterPattern != "" {
		input.FilterPattern = aws.String(r.query.FilterPattern)
	}
	if !r.query.StartTime.IsZero() {
		input.StartTime = aws.Int64(r.query.StartTime.UnixMilli())
	}
	if !r.query.EndTime.IsZero() {
		input.EndTime = aws.Int64(r.query.EndTime.UnixMilli())
	}

	out, err := r.client.FilterLogEvents(ctx, input)
	if err != nil {
		return err
	}
	for _, e := range out.Events {
		msg := strings.TrimRight(aws.ToString(e.Message), "\n")
		for _, line := range strings.Split(msg, "\n") {
			r.pending = append(r.pending, strings.TrimSuffix(line, "\r"))
		}
	}

	if out.NextToken == nil || (r.next != nil && aws.ToString(out.NextToken) == aws.ToString(r.next)) {
		r.done = true
	}
	r.next = out.NextToken
	return nil
}
