package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"customer-stats/internal/ingestors"
	"customer-stats/internal/queries"
	"customer-stats/internal/shared/ulid"
	"customer-stats/internal/sources"

	"github.com/go-chi/chi/v5"
)

const maxLogBodyBytes = 2 * 1024 * 1024

type pingHandler struct{}

func NewPingHandler() AppHttpHandler {
	return &pingHandler{}
}

// Handle processes GET /ping requests.
func (h *pingHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]string{"result": "pong"})
	return nil
}

type customerStatsHandler struct {
	statsQueryService queries.StatsQueryService
}

func NewCustomerStatsHandler(statsQueryService queries.StatsQueryService) AppHttpHandler {
	return &customerStatsHandler{statsQueryService: statsQueryService}
}

// Handle processes GET /customers/{id}/stats?from=YYYY-MM-DD requests.
func (h *customerStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.statsQueryService.GetStats(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("from"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

type ingestLogHandler struct {
	ingestionService ingestors.IngestionService
	batchSize        int
}

func NewIngestLogHandler(ingestionService ingestors.IngestionService, batchSize int) AppHttpHandler {
	return &ingestLogHandler{ingestionService: ingestionService, batchSize: batchSize}
}

// Handle processes POST /logs requests. The body is plain text, one access-log
// line per row.
func (h *ingestLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLogBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errBodyTooLarge(err)
		}
		return errBodyUnreadable(err)
	}

	source := sources.NewReaderSource("http", bytes.NewReader(body))
	summary, err := h.ingestionService.Ingest(r.Context(), source, h.batchSize)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, summary)
	return nil
}

type ingestRunHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestRunHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestRunHandler{ingestionService: ingestionService}
}

// Handle processes GET /ingest-runs/{runId} requests.
func (h *ingestRunHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runID := chi.URLParam(r, "runId")
	if !ulid.IsValid(runID) {
		return errInvalidRunID(runID)
	}

	summary, err := h.ingestionService.GetRun(r.Context(), runID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, summary)
	return nil
}

type notFoundHandler struct{}

// Handle answers unknown routes with the standard error body.
func (h *notFoundHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return errRouteNotFound()
}
