package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/finsight/internal/adapter/http/handler"
	"github.com/iho/finsight/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	IngestHandler *handler.IngestHandler
	LedgerHandler *handler.LedgerHandler
	ExportHandler *handler.ExportHandler
	HealthHandler *handler.HealthHandler
	Logger        zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	logging := middleware.NewLoggingMiddleware(cfg.Logger)

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(logging.Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/files", cfg.IngestHandler.Upload)

		r.Route("/ledgers", func(r chi.Router) {
			r.Get("/", cfg.LedgerHandler.List)
			r.Get("/{name}/summary", cfg.LedgerHandler.Summary)
		})

		r.Get("/overview/personal", cfg.LedgerHandler.Overview)
		r.Get("/export", cfg.ExportHandler.Export)
	})

	return r
}
