package http

import (
	"net/http"
	"time"

	"customer-stats/internal/ingestors"
	"customer-stats/internal/queries"
	"customer-stats/internal/shared/loggers"
	"customer-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// RouterConfig carries the handler settings that come from configuration.
type RouterConfig struct {
	RequestTimeout time.Duration
	BatchSize      int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(
	cfg RouterConfig,
	ingestionService ingestors.IngestionService,
	statsQueryService queries.StatsQueryService,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger, cfg.RequestTimeout)

	router.NotFound(errorHandlingAdapter(&notFoundHandler{}))

	router.Get("/ping", errorHandlingAdapter(NewPingHandler()))
	router.Get("/customers/{id}/stats", errorHandlingAdapter(NewCustomerStatsHandler(statsQueryService)))
	router.Post("/logs", errorHandlingAdapter(NewIngestLogHandler(ingestionService, cfg.BatchSize)))
	router.Get("/ingest-runs/{runId}", errorHandlingAdapter(NewIngestRunHandler(ingestionService)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
