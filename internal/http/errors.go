package http

import (
	"customer-stats/internal/shared/svcerrors"
)

// Transport-level errors raised before a request reaches a service.
const (
	codeBodyTooLarge   = "HTTP_1000"
	codeBodyUnreadable = "HTTP_1001"
	codeInvalidRunID   = "HTTP_1002"
	codeRouteNotFound  = "HTTP_1003"
)

func errBodyTooLarge(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBodyTooLarge, "log body too large: must be <= 2MB", cause)
}

func errBodyUnreadable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBodyUnreadable, "failed to read request body", cause)
}

func errInvalidRunID(runID string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRunID, "runId must be a valid ULID: "+runID, nil)
}

func errRouteNotFound() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeRouteNotFound, "route not found", nil)
}

