package ingestors

import (
	"errors"
	"fmt"

	"customer-stats/internal/shared/svcerrors"
	"customer-stats/internal/sources"
)

// IngestionService errors
const (
	codeValidationFailed  = "ING_1000"
	codeSourceUnavailable = "ING_1001"
	codeIngestRunNotFound = "ING_1002"

	codeInternalFlushFailed    = "ING_9000"
	codeInternalReadFailed     = "ING_9001"
	codeInternalRunStoreFailed = "ING_9002"
)

// FlushError reports how far a run got before it stopped. Batches counted in
// CommittedBatches are durable; nothing after them is.
type FlushError struct {
	RunID            string
	CommittedBatches int
	StoredRecords    int
	Cause            error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("ingestion stopped after %d committed batches (%d records): %v", e.CommittedBatches, e.StoredRecords, e.Cause)
}

func (e *FlushError) Unwrap() error {
	return e.Cause
}

// clientMessage omits the cause, which may carry storage details.
func (e *FlushError) clientMessage() string {
	return fmt.Sprintf("ingestion run %s stopped after %d committed batches (%d records stored)", e.RunID, e.CommittedBatches, e.StoredRecords)
}

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errSourceUnavailable keeps sources.ErrSourceUnavailable in the chain for any cause.
func errSourceUnavailable(cause error) *svcerrors.ServiceError {
	if !errors.Is(cause, sources.ErrSourceUnavailable) {
		cause = fmt.Errorf("%w: %w", sources.ErrSourceUnavailable, cause)
	}
	return svcerrors.NewInvalidArgumentError(codeSourceUnavailable, "log source unavailable", cause)
}

func errIngestRunNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeIngestRunNotFound, "ingest run not found", cause)
}

func errInternalFlushFailed(cause *FlushError) *svcerrors.ServiceError {
	return svcerrors.NewInternalErrorWithMessage(codeInternalFlushFailed, cause.clientMessage(), cause)
}

func errInternalReadFailed(cause *FlushError) *svcerrors.ServiceError {
	return svcerrors.NewInternalErrorWithMessage(codeInternalReadFailed, cause.clientMessage(), cause)
}

func errInternalRunStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRunStoreFailed, fmt.Errorf("ingestRunStoreFailed: %w", cause))
}
