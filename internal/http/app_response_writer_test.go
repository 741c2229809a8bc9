package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("QRY_1000", "bad date", nil))
	assert.Equal(t, "QRY_1000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestResponseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		write        func(w *appResponseWriter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "nothing written",
			write:        func(*appResponseWriter) {},
			expectedCode: http.StatusOK,
		},
		{
			name:         "body without header",
			write:        func(w *appResponseWriter) { _, _ = w.Write([]byte("ok")) },
			expectedCode: http.StatusOK,
		},
		{
			name: "explicit status and error",
			write: func(w *appResponseWriter) {
				w.SetServiceError(svcerrors.NewNotFoundError("QRY_1001", "customer not found", nil))
				w.WriteHeader(http.StatusNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "QRY_1001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
			tt.write(appWriter)

			status, errorCode := responseStatus(appWriter)
			assert.Equal(t, tt.expectedCode, status)
			assert.Equal(t, tt.expectedErr, errorCode)
		})
	}
}

func TestResponseStatus_PlainWriter(t *testing.T) {
	t.Parallel()

	status, errorCode := responseStatus(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, errorCode)
}
