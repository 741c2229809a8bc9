package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"customer-stats/internal/aggregators"
	aggregatormocks "customer-stats/internal/aggregators/mocks"
	"customer-stats/internal/models"
	"customer-stats/internal/queries"
	"customer-stats/internal/shared/svcerrors"
	storemocks "customer-stats/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func scenarioRecords() []*models.LogRecord {
	return []*models.LogRecord{
		{Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), CustomerID: "c1", RequestPath: "/a", StatusCode: 200, Duration: 0.1},
		{Timestamp: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC), CustomerID: "c1", RequestPath: "/b", StatusCode: 500, Duration: 0.3},
	}
}

func requireServiceError(t *testing.T, err error, code string) *svcerrors.ServiceError {
	t.Helper()

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	return svcErr
}

func TestGetStats_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordStore := storemocks.NewMockLogRecordStore(ctrl)
	service := queries.NewStatsQueryService(recordStore, aggregators.NewDailyStatsAggregator(models.QuantileNearestRank))

	ctx := context.Background()
	recordStore.EXPECT().Exists(ctx, "c1").Return(true, nil)
	recordStore.EXPECT().Scan(ctx, "c1", jan1).Return(scenarioRecords(), nil)

	stats, err := service.GetStats(ctx, "c1", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2024-01-01", stats[0].Date)
	assert.Equal(t, int64(1), stats[0].SuccessfulRequests)
	assert.Equal(t, int64(1), stats[0].FailedRequests)
	assert.InDelta(t, 50.0, stats[0].Uptime, 1e-9)
	assert.InDelta(t, 0.2, stats[0].AverageLatency, 1e-9)
}

func TestGetStats_ErrValidationFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		customerID string
		from       string
		wantMsg    string
	}{
		{name: "not a date", customerID: "c1", from: "yesterday", wantMsg: "from must be a date in YYYY-MM-DD format"},
		{name: "wrong format", customerID: "c1", from: "01/01/2024", wantMsg: "from must be a date in YYYY-MM-DD format"},
		{name: "impossible date", customerID: "c1", from: "2024-02-30", wantMsg: "from must be a date in YYYY-MM-DD format"},
		{name: "missing from", customerID: "c1", from: "", wantMsg: "from is required"},
		{name: "missing customer", customerID: "", from: "2024-01-01", wantMsg: "customerId is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No store expectations: validation fails before any storage access.
			recordStore := storemocks.NewMockLogRecordStore(ctrl)
			service := queries.NewStatsQueryService(recordStore, aggregators.NewDailyStatsAggregator(models.QuantileNearestRank))

			stats, err := service.GetStats(context.Background(), tt.customerID, tt.from)
			assert.Nil(t, stats)
			svcErr := requireServiceError(t, err, "QRY_1000")
			assert.Equal(t, "invalid_argument", svcErr.Category)
			assert.Equal(t, tt.wantMsg, svcErr.Message)
		})
	}
}

func TestGetStats_ErrCustomerNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordStore := storemocks.NewMockLogRecordStore(ctrl)
	service := queries.NewStatsQueryService(recordStore, aggregators.NewDailyStatsAggregator(models.QuantileNearestRank))

	recordStore.EXPECT().Exists(gomock.Any(), "c999").Return(false, nil)

	stats, err := service.GetStats(context.Background(), "c999", "2024-01-01")
	assert.Nil(t, stats)
	svcErr := requireServiceError(t, err, "QRY_1001")
	assert.True(t, svcErr.IsNotFound())
	assert.Equal(t, "customer not found", svcErr.Message)
}

func TestGetStats_ErrNoRecordsFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordStore := storemocks.NewMockLogRecordStore(ctrl)
	service := queries.NewStatsQueryService(recordStore, aggregators.NewDailyStatsAggregator(models.QuantileNearestRank))

	from := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	recordStore.EXPECT().Exists(gomock.Any(), "c1").Return(true, nil)
	recordStore.EXPECT().Scan(gomock.Any(), "c1", from).Return([]*models.LogRecord{}, nil)

	stats, err := service.GetStats(context.Background(), "c1", "2030-01-01")
	assert.Nil(t, stats)
	svcErr := requireServiceError(t, err, "QRY_1002")
	assert.True(t, svcErr.IsNotFound())
	assert.ErrorIs(t, err, aggregators.ErrEmptyInput)
}

func TestGetStats_ErrInternal(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("database is locked")

	tests := []struct {
		name     string
		setup    func(recordStore *storemocks.MockLogRecordStore, aggregator *aggregatormocks.MockDailyStatsAggregator)
		wantCode string
	}{
		{
			name: "exists fails",
			setup: func(recordStore *storemocks.MockLogRecordStore, _ *aggregatormocks.MockDailyStatsAggregator) {
				recordStore.EXPECT().Exists(gomock.Any(), "c1").Return(false, storeErr)
			},
			wantCode: "QRY_9000",
		},
		{
			name: "scan fails",
			setup: func(recordStore *storemocks.MockLogRecordStore, _ *aggregatormocks.MockDailyStatsAggregator) {
				recordStore.EXPECT().Exists(gomock.Any(), "c1").Return(true, nil)
				recordStore.EXPECT().Scan(gomock.Any(), "c1", jan1).Return(nil, storeErr)
			},
			wantCode: "QRY_9000",
		},
		{
			name: "aggregation fails",
			setup: func(recordStore *storemocks.MockLogRecordStore, aggregator *aggregatormocks.MockDailyStatsAggregator) {
				records := scenarioRecords()
				recordStore.EXPECT().Exists(gomock.Any(), "c1").Return(true, nil)
				recordStore.EXPECT().Scan(gomock.Any(), "c1", jan1).Return(records, nil)
				aggregator.EXPECT().Aggregate(records, "c1", jan1).Return(nil, storeErr)
			},
			wantCode: "QRY_9001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			recordStore := storemocks.NewMockLogRecordStore(ctrl)
			aggregator := aggregatormocks.NewMockDailyStatsAggregator(ctrl)
			tt.setup(recordStore, aggregator)
			service := queries.NewStatsQueryService(recordStore, aggregator)

			stats, err := service.GetStats(context.Background(), "c1", "2024-01-01")
			assert.Nil(t, stats)
			svcErr := requireServiceError(t, err, tt.wantCode)
			assert.True(t, svcErr.IsInternalError())
			assert.ErrorIs(t, err, storeErr)
		})
	}
}
