package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"customer-stats/internal/models"
	"customer-stats/internal/shared/loggers"
	"customer-stats/internal/shared/metrics"
	"customer-stats/internal/shared/svcerrors"
	"customer-stats/internal/shared/ulid"
	"customer-stats/internal/sources"
	"customer-stats/internal/stores"
)

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest reads every line of source, stores valid records in batches of
	// batchSize and reports what was stored and what was rejected. On a flush
	// or read failure the partial summary is returned together with the error
	// and persisted with its FailureCode set.
	Ingest(ctx context.Context, source sources.LineSource, batchSize int) (*models.IngestSummary, error)
	// GetRun returns the report of a run, including one that stopped on a
	// flush or read failure.
	GetRun(ctx context.Context, runID string) (*models.IngestSummary, error)
}

type ingestionService struct {
	recordStore stores.LogRecordStore
	runStore    stores.IngestRunStore
	now         func() time.Time
}

func NewIngestionService(recordStore stores.LogRecordStore, runStore stores.IngestRunStore) IngestionService {
	return &ingestionService{
		recordStore: recordStore,
		runStore:    runStore,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ingestionService) Ingest(ctx context.Context, source sources.LineSource, batchSize int) (*models.IngestSummary, error) {
	if batchSize < 1 {
		return nil, errValidationFailed("batch size must be at least 1", nil)
	}
	if source == nil {
		return nil, errValidationFailed("source is required", nil)
	}

	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldSource, source.Name()).
		Logger()

	reader, err := source.Open(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open log source")
		return nil, errSourceUnavailable(err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close log source")
		}
	}()

	logger.Info().Int(loggers.FieldBatchSize, batchSize).Msg("started ingestion run")

	summary := models.NewIngestSummary(runID, source.Name(), s.now())
	batch := make([]*models.LogRecord, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.recordStore.AppendBatch(ctx, batch); err != nil {
			metricBatchesFlushedTotal.WithLabelValues(codeInternalFlushFailed).Inc()
			return err
		}
		metricBatchesFlushedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		metricLinesIngestedTotal.WithLabelValues(resultStored).Add(float64(len(batch)))
		summary.StoredCount += len(batch)
		summary.CommittedBatches++
		batch = make([]*models.LogRecord, 0, batchSize)
		return nil
	}

	lineNumber := 0
	for {
		line, err := reader.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, sources.ErrLineTooLong) {
			lineNumber++
			s.reject(logger, summary, models.Rejection{
				LineNumber: lineNumber,
				Kind:       models.RejectMalformedLine,
				Reason:     fmt.Sprintf("line exceeds %d bytes", sources.MaxLineBytes),
			}, "")
			continue
		}
		if err != nil {
			logger.Error().Err(err).
				Int(loggers.FieldLineNumber, lineNumber+1).
				Int("committed_batches", summary.CommittedBatches).
				Msg("ingestion run stopped while reading")
			return s.abort(ctx, logger, summary, errInternalReadFailed(s.flushError(summary, err)))
		}
		lineNumber++

		record, err := ParseLine(line)
		if err != nil {
			rejection := models.Rejection{LineNumber: lineNumber, Kind: models.RejectMalformedLine, Reason: err.Error()}
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				rejection.Kind = parseErr.Kind
				rejection.Reason = parseErr.Reason
			}
			s.reject(logger, summary, rejection, line)
			continue
		}

		batch = append(batch, record)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return s.abortFlush(ctx, logger, summary, err)
			}
		}
	}

	if err := flush(); err != nil {
		return s.abortFlush(ctx, logger, summary, err)
	}
	summary.FinishedAt = s.now()
	s.persistRun(ctx, logger, summary)

	logger.Info().
		Int("stored_count", summary.StoredCount).
		Int("rejected_count", summary.RejectedCount).
		Int("committed_batches", summary.CommittedBatches).
		Msg("finished ingestion run")
	return summary, nil
}

func (s *ingestionService) GetRun(ctx context.Context, runID string) (*models.IngestSummary, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, errValidationFailed("runId is required", nil)
	}

	summary, err := s.runStore.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, stores.ErrIngestRunNotFound) {
			return nil, errIngestRunNotFound(err)
		}
		return nil, errInternalRunStoreFailed(err)
	}
	return summary, nil
}

func (s *ingestionService) abortFlush(ctx context.Context, logger loggers.Logger, summary *models.IngestSummary, cause error) (*models.IngestSummary, error) {
	logger.Error().Err(cause).
		Int("committed_batches", summary.CommittedBatches).
		Int("stored_count", summary.StoredCount).
		Msg("ingestion run stopped by failed batch")
	return s.abort(ctx, logger, summary, errInternalFlushFailed(s.flushError(summary, cause)))
}

// abort records the failure on the summary and persists it, so the committed
// part of the run stays visible through GetRun.
func (s *ingestionService) abort(ctx context.Context, logger loggers.Logger, summary *models.IngestSummary, svcErr *svcerrors.ServiceError) (*models.IngestSummary, error) {
	summary.FinishedAt = s.now()
	summary.FailureCode = svcErr.Code
	s.persistRun(context.WithoutCancel(ctx), logger, summary)
	return summary, svcErr
}

// persistRun stores the run report. A failure here is logged only.
func (s *ingestionService) persistRun(ctx context.Context, logger loggers.Logger, summary *models.IngestSummary) {
	if err := s.runStore.Put(ctx, summary); err != nil {
		logger.Error().Err(err).Msg("failed to persist ingest run report")
	}
}

func (s *ingestionService) reject(logger loggers.Logger, summary *models.IngestSummary, rejection models.Rejection, line string) {
	summary.AddRejection(rejection)
	metricLinesIngestedTotal.WithLabelValues(resultRejected).Inc()
	event := logger.Warn().
		Int(loggers.FieldLineNumber, rejection.LineNumber).
		Str(loggers.FieldRejectKind, string(rejection.Kind))
	if line != "" {
		event = event.Str("line", truncate(line, 256))
	}
	event.Msg(rejection.Reason)
}

func (s *ingestionService) flushError(summary *models.IngestSummary, cause error) *FlushError {
	return &FlushError{
		RunID:            summary.RunID,
		CommittedBatches: summary.CommittedBatches,
		StoredRecords:    summary.StoredCount,
		Cause:            cause,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
