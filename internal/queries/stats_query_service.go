package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"customer-stats/internal/aggregators"
	"customer-stats/internal/models"
	"customer-stats/internal/shared/loggers"
	"customer-stats/internal/shared/metrics"
	"customer-stats/internal/shared/svcerrors"
	"customer-stats/internal/shared/validators"
	"customer-stats/internal/stores"
)

//go:generate mockgen -source=stats_query_service.go -destination=./mocks/stats_query_service_mock.go -package=mocks
type StatsQueryService interface {
	// GetStats returns the daily statistics of customerID from the day given
	// as "YYYY-MM-DD" onwards, ascending by date.
	GetStats(ctx context.Context, customerID string, from string) ([]*models.DailyStats, error)
}

type statsQuery struct {
	CustomerID string `name:"customerId" validate:"required"`
	From       string `name:"from" validate:"required,datetime=2006-01-02"`
}

type statsQueryService struct {
	recordStore stores.LogRecordStore
	aggregator  aggregators.DailyStatsAggregator
	validate    *validators.Validate
}

func NewStatsQueryService(recordStore stores.LogRecordStore, aggregator aggregators.DailyStatsAggregator) StatsQueryService {
	return &statsQueryService{
		recordStore: recordStore,
		aggregator:  aggregator,
		validate:    validators.New(),
	}
}

func (s *statsQueryService) GetStats(ctx context.Context, customerID string, from string) ([]*models.DailyStats, error) {
	stats, err := s.getStats(ctx, customerID, from)
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricStatsQueriesTotal.WithLabelValues(code).Inc()
	return stats, err
}

func (s *statsQueryService) getStats(ctx context.Context, customerID string, from string) ([]*models.DailyStats, error) {
	logger := loggers.Ctx(ctx)

	query := statsQuery{CustomerID: customerID, From: from}
	if err := s.validate.Struct(&query); err != nil {
		return nil, errValidationFailed(formatValidationError(err), err)
	}
	fromDate, err := time.ParseInLocation(models.DateLayout, from, time.UTC)
	if err != nil {
		return nil, errValidationFailed("from must be a date in YYYY-MM-DD format", err)
	}

	exists, err := s.recordStore.Exists(ctx, customerID)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	if !exists {
		return nil, errCustomerNotFound()
	}

	records, err := s.recordStore.Scan(ctx, customerID, fromDate)
	if err != nil {
		return nil, errInternalRecordStoreFailed(err)
	}
	logger.Debug().
		Str(loggers.FieldCustomerID, customerID).
		Int("record_count", len(records)).
		Msgf("scanned records from %s", from)

	stats, err := s.aggregator.Aggregate(records, customerID, fromDate)
	if err != nil {
		if errors.Is(err, aggregators.ErrEmptyInput) {
			return nil, errNoRecordsFound(err)
		}
		return nil, errInternalAggregationFailed(err)
	}
	return stats, nil
}

func formatValidationError(err error) string {
	var ve validators.ValidationErrors
	if !errors.As(err, &ve) {
		return "invalid query"
	}

	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
