package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capitalRuns/app/echo-server/router"
	"capitalRuns/business/ingest"
	"capitalRuns/business/runs"
	"capitalRuns/business/taxonomy"
	"capitalRuns/internal/middleware"
	"capitalRuns/internal/repository/csvstore"
	"capitalRuns/internal/rest"
	"capitalRuns/pkg/config"
	"capitalRuns/pkg/logger"
	"capitalRuns/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Capital Runs API", "version", cfg.App.Version)

	metrics.Init()

	store, err := csvstore.NewStore(cfg.Storage.DataDir)
	if err != nil {
		logger.Fatal("Failed to initialize data store", "error", err)
	}

	logger.Info("Data store ready", "dir", store.Dir())

	// Init repo
	actualRepo := csvstore.NewActualRunRepository(store)
	experimentRepo := csvstore.NewExperimentRunRepository(store)
	scenarioRepo := csvstore.NewScenarioRunRepository(store)
	taxonomyRepo := csvstore.NewTaxonomyRepository(store)

	// Init service
	runService := runs.NewRunService(actualRepo, experimentRepo, scenarioRepo)
	taxonomyService := taxonomy.NewTaxonomyService(taxonomyRepo)
	ingestService := ingest.NewIngestService(experimentRepo, store.Dir())

	// Init handler
	actualHandler := rest.NewActualRunsHandler(runService)
	experimentHandler := rest.NewExperimentRunsHandler(runService)
	scenarioHandler := rest.NewScenarioRunsHandler(runService)
	taxonomyHandler := rest.NewTaxonomyHandler(taxonomyService)
	uploadHandler := rest.NewUploadHandler(ingestService)
	healthHandler := rest.NewHealthHandler()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api")
	router.SetupActualRunRoutes(api, actualHandler)
	router.SetupExperimentRunRoutes(api, experimentHandler)
	router.SetupScenarioRunRoutes(api, scenarioHandler)
	router.SetupTaxonomyRoutes(api, taxonomyHandler)
	router.SetupUploadRoutes(api, uploadHandler)
	router.SetupHealthRoutes(e, healthHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
