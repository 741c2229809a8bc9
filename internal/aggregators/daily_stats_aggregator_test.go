package aggregators

import (
	"testing"
	"time"

	"customer-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(ts, customerID string, status int, duration float64) *models.LogRecord {
	timestamp, err := time.ParseInLocation(models.TimestampLayout, ts, time.UTC)
	if err != nil {
		panic(err)
	}
	return &models.LogRecord{Timestamp: timestamp, CustomerID: customerID, RequestPath: "/a", StatusCode: status, Duration: duration}
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(models.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregate_SingleDayMixedStatus(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		rec("2024-01-01 10:00:00", "c1", 200, 0.1),
		rec("2024-01-01 11:00:00", "c1", 500, 0.3),
		rec("2024-01-01 12:00:00", "c2", 200, 9.9),
	}

	for _, method := range []models.QuantileMethod{models.QuantileNearestRank, models.QuantileExclusive} {
		t.Run(string(method), func(t *testing.T) {
			t.Parallel()

			stats, err := NewDailyStatsAggregator(method).Aggregate(records, "c1", day("2024-01-01"))
			require.NoError(t, err)
			require.Len(t, stats, 1)

			s := stats[0]
			assert.Equal(t, "2024-01-01", s.Date)
			assert.Equal(t, int64(1), s.SuccessfulRequests)
			assert.Equal(t, int64(1), s.FailedRequests)
			assert.InDelta(t, 50.0, s.Uptime, 1e-9)
			assert.InDelta(t, 0.2, s.AverageLatency, 1e-9)
			assert.InDelta(t, 0.2, s.MedianLatency, 1e-9)
		})
	}
}

func TestAggregate_P99ByMethod(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		rec("2024-01-01 10:00:00", "c1", 200, 1),
		rec("2024-01-01 11:00:00", "c1", 200, 2),
	}

	nearest, err := NewDailyStatsAggregator(models.QuantileNearestRank).Aggregate(records, "c1", day("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, nearest[0].P99Latency)

	exclusive, err := NewDailyStatsAggregator(models.QuantileExclusive).Aggregate(records, "c1", day("2024-01-01"))
	require.NoError(t, err)
	assert.InDelta(t, 2.97, exclusive[0].P99Latency, 1e-9)
}

func TestAggregate_DefaultMethodIsNearestRank(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		rec("2024-01-01 10:00:00", "c1", 200, 1),
		rec("2024-01-01 11:00:00", "c1", 200, 2),
	}
	stats, err := NewDailyStatsAggregator("").Aggregate(records, "c1", day("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, stats[0].P99Latency)
}

func TestAggregate_SingleRecordCollapses(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{rec("2024-03-05 08:00:00", "c1", 404, 0.7)}

	for _, method := range []models.QuantileMethod{models.QuantileNearestRank, models.QuantileExclusive} {
		stats, err := NewDailyStatsAggregator(method).Aggregate(records, "c1", day("2024-03-01"))
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, 0.7, stats[0].AverageLatency)
		assert.Equal(t, 0.7, stats[0].MedianLatency)
		assert.Equal(t, 0.7, stats[0].P99Latency)
		assert.Equal(t, 0.0, stats[0].Uptime)
	}
}

func TestAggregate_SortedByDateWithoutDuplicates(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		rec("2024-01-03 10:00:00", "c1", 200, 0.1),
		rec("2024-01-01 23:59:59", "c1", 200, 0.1),
		rec("2024-01-02 00:00:00", "c1", 500, 0.1),
		rec("2024-01-01 00:00:00", "c1", 200, 0.1),
		rec("2024-01-03 11:00:00", "c1", 200, 0.1),
	}

	stats, err := NewDailyStatsAggregator(models.QuantileNearestRank).Aggregate(records, "c1", day("2024-01-01"))
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "2024-01-01", stats[0].Date)
	assert.Equal(t, "2024-01-02", stats[1].Date)
	assert.Equal(t, "2024-01-03", stats[2].Date)
	assert.Equal(t, int64(2), stats[0].TotalRequests())
	assert.Equal(t, int64(1), stats[1].TotalRequests())
	assert.Equal(t, int64(2), stats[2].TotalRequests())
}

func TestAggregate_FromIsInclusiveLowerBound(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		rec("2023-12-31 23:59:59", "c1", 200, 0.1),
		rec("2024-01-01 00:00:00", "c1", 500, 0.4),
		rec("2030-01-01 00:00:00", "c1", 200, 0.2),
	}

	stats, err := NewDailyStatsAggregator(models.QuantileNearestRank).Aggregate(records, "c1", day("2024-01-01"))
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2024-01-01", stats[0].Date)
	assert.Equal(t, "2030-01-01", stats[1].Date)
}

func TestAggregate_InvariantsHold(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		rec("2024-01-01 10:00:00", "c1", 200, 0.05),
		rec("2024-01-01 10:00:01", "c1", 201, 1.5),
		rec("2024-01-01 10:00:02", "c1", 200, 0.2),
		rec("2024-01-01 10:00:03", "c1", 503, 0.9),
		rec("2024-01-01 10:00:04", "c1", 200, 0.3),
	}

	for _, method := range []models.QuantileMethod{models.QuantileNearestRank, models.QuantileExclusive} {
		stats, err := NewDailyStatsAggregator(method).Aggregate(records, "c1", day("2024-01-01"))
		require.NoError(t, err)
		s := stats[0]
		assert.Equal(t, int64(5), s.TotalRequests())
		assert.Equal(t, int64(3), s.SuccessfulRequests)
		assert.GreaterOrEqual(t, s.Uptime, 0.0)
		assert.LessOrEqual(t, s.Uptime, 100.0)
		assert.InDelta(t, 60.0, s.Uptime, 1e-9)
		assert.LessOrEqual(t, s.MedianLatency, s.P99Latency)
		assert.Equal(t, 0.3, s.MedianLatency)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	t.Parallel()

	aggregator := NewDailyStatsAggregator(models.QuantileNearestRank)

	_, err := aggregator.Aggregate(nil, "c1", day("2024-01-01"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = aggregator.Aggregate([]*models.LogRecord{rec("2023-06-01 10:00:00", "c1", 200, 0.1)}, "c1", day("2024-01-01"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = aggregator.Aggregate([]*models.LogRecord{rec("2024-06-01 10:00:00", "c2", 200, 0.1)}, "c1", day("2024-01-01"))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAggregate_BatchingInvariance(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		rec("2024-01-01 10:00:00", "c1", 200, 0.1),
		rec("2024-01-01 11:00:00", "c1", 500, 0.3),
		rec("2024-01-02 09:00:00", "c1", 200, 0.2),
	}
	reversed := []*models.LogRecord{records[2], records[1], records[0]}

	aggregator := NewDailyStatsAggregator(models.QuantileExclusive)
	a, err := aggregator.Aggregate(records, "c1", day("2024-01-01"))
	require.NoError(t, err)
	b, err := aggregator.Aggregate(reversed, "c1", day("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDayAccumulator_RejectsForeignRecords(t *testing.T) {
	t.Parallel()

	acc := newDayAccumulator("c1", "2024-01-01")
	require.NoError(t, acc.add(rec("2024-01-01 10:00:00", "c1", 200, 0.1)))

	err := acc.add(rec("2024-01-01 10:00:00", "c2", 200, 0.1))
	assert.ErrorContains(t, err, "customerID mismatch")

	err = acc.add(rec("2024-01-02 10:00:00", "c1", 200, 0.1))
	assert.ErrorContains(t, err, "date mismatch")
}
