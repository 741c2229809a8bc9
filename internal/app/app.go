package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"customer-stats/internal/aggregators"
	internalhttp "customer-stats/internal/http"
	"customer-stats/internal/ingestors"
	"customer-stats/internal/models"
	"customer-stats/internal/queries"
	"customer-stats/internal/shared/configs"
	"customer-stats/internal/shared/filestorages"
	"customer-stats/internal/shared/loggers"
	"customer-stats/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	db        *sql.DB
	server    *http.Server

	ingestionService  ingestors.IngestionService
	statsQueryService queries.StatsQueryService
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(ctx, config, appLogger)
}

// NewWithLogger is New with a caller-supplied base logger.
func NewWithLogger(ctx context.Context, config *configs.Config, appLogger loggers.Logger) (*App, error) {
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "customer-stats").
		Logger()

	quantileMethod, err := models.NewQuantileMethodFromString(config.Aggregation.QuantileMethod)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize quantile method: %w", err)
	}

	// Initialize blob store for ingest run reports
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize record database
	db, err := stores.OpenDatabase(ctx, config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	recordStore := stores.NewLogRecordStore(db)
	runStore := stores.NewIngestRunStore(fileStorage)
	ingestionService := ingestors.NewIngestionService(recordStore, runStore)

	aggregator := aggregators.NewDailyStatsAggregator(quantileMethod)
	statsQueryService := queries.NewStatsQueryService(recordStore, aggregator)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(
		internalhttp.RouterConfig{
			RequestTimeout: time.Duration(config.Server.RequestTimeout) * time.Second,
			BatchSize:      config.Ingestion.BatchSize,
		},
		ingestionService,
		statsQueryService,
		httpLogger,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:            config,
		appLogger:         appLogger,
		db:                db,
		server:            server,
		ingestionService:  ingestionService,
		statsQueryService: statsQueryService,
	}, nil
}

// Logger returns the application logger.
func (app *App) Logger() loggers.Logger {
	return app.appLogger
}

// IngestionService exposes the batch writer for command-line ingestion.
func (app *App) IngestionService() ingestors.IngestionService {
	return app.ingestionService
}

// StatsQueryService exposes the stats query service.
func (app *App) StatsQueryService() queries.StatsQueryService {
	return app.statsQueryService
}

// Handler returns the HTTP handler served by Start.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting customer-stats service on port %d (log_level=%s, database=%s, quantile_method=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Path,
			app.config.Aggregation.QuantileMethod)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server, then closes the database.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return errors.Join(fmt.Errorf("server shutdown failed: %w", err), app.Close())
	}
	app.appLogger.Info().Msg("Server stopped")
	return app.Close()
}

// Close releases the database. It is safe to call more than once.
func (app *App) Close() error {
	if app.db == nil {
		return nil
	}
	err := app.db.Close()
	app.db = nil
	if err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database closed")
	return nil
}
