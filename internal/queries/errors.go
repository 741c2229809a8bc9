package queries

import (
	"fmt"

	"customer-stats/internal/shared/svcerrors"
)

// StatsQueryService errors
const (
	codeValidationFailed = "QRY_1000"
	codeCustomerNotFound = "QRY_1001"
	codeNoRecordsFound   = "QRY_1002"

	codeInternalRecordStoreFailed = "QRY_9000"
	codeInternalAggregationFailed = "QRY_9001"
)

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errCustomerNotFound() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeCustomerNotFound, "customer not found", nil)
}

func errNoRecordsFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoRecordsFound, "no records found for the given customer and date range", cause)
}

func errInternalRecordStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordStoreFailed, fmt.Errorf("logRecordStoreFailed: %w", cause))
}

func errInternalAggregationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregationFailed, fmt.Errorf("aggregationFailed: %w", cause))
}
