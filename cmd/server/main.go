package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/iho/finsight/internal/adapter/classifier"
	httpAdapter "github.com/iho/finsight/internal/adapter/http"
	"github.com/iho/finsight/internal/adapter/http/handler"
	"github.com/iho/finsight/internal/infrastructure/config"
	"github.com/iho/finsight/internal/infrastructure/id"
	"github.com/iho/finsight/internal/infrastructure/logger"
	"github.com/iho/finsight/internal/schema"
	"github.com/iho/finsight/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	// Classification lookup is optional; without it categorization degrades
	// to local rules.
	var lookup usecase.Classifier
	if cfg.ClassifierURL != "" {
		lookup = classifier.New(classifier.Config{
			BaseURL: cfg.ClassifierURL,
			Token:   cfg.ClassifierToken,
			Timeout: cfg.ClassifierTimeout,
		}, appLogger)
		appLogger.Info().Str("url", cfg.ClassifierURL).Msg("classification lookup configured")
	} else {
		appLogger.Warn().Msg("no classification lookup configured, using local rules only")
	}

	// Initialize the pipeline
	idGen := id.NewULIDGenerator()
	normalizer := schema.NewNormalizer(idGen)
	categorizeUC := usecase.NewCategorizeUseCase(lookup, cfg.FuzzyMatchDistance, appLogger)
	partitionUC := usecase.NewPartitionUseCase()
	summaryUC := usecase.NewSummaryUseCase()
	ingestUC := usecase.NewIngestUseCase(normalizer, categorizeUC, partitionUC, idGen, appLogger)

	// Initialize handlers
	ingestHandler := handler.NewIngestHandler(ingestUC, cfg.MaxUploadBytes)
	ledgerHandler := handler.NewLedgerHandler(partitionUC, summaryUC)
	exportHandler := handler.NewExportHandler(partitionUC)
	healthHandler := handler.NewHealthHandler()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		IngestHandler: ingestHandler,
		LedgerHandler: ledgerHandler,
		ExportHandler: exportHandler,
		HealthHandler: healthHandler,
		Logger:        appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
