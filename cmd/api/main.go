// Command api serves the published tennis artifact set over HTTP.
//
// Usage:
//
//	tennis-api
//	API_PORT=8080 OUTPUT_DIR=public/data tennis-api

// @title Tennis Data API
// @version 1.0.0
// @description Read-only API serving the published ATP artifact set: metadata, pre-aggregated stats, active players and yearly match partitions. Bodies are passed through from the artifact store unchanged.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Tennis Data
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/tennis-data/internal/api"
	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/cache"
	"github.com/albapepper/tennis-data/internal/config"
	"github.com/albapepper/tennis-data/internal/metrics"

	_ "github.com/albapepper/tennis-data/docs" // swagger docs
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		level.Set(slog.LevelDebug)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Open artifact store
	var store artifact.Store
	if cfg.UsesS3() {
		s3Store, err := artifact.NewS3Store(cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			logger.Error("Failed to open S3 store", "error", err)
			os.Exit(1)
		}
		store = s3Store
		logger.Info("Serving artifacts from S3", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
	} else {
		store = artifact.NewFileStore(cfg.OutputDir)
		logger.Info("Serving artifacts from disk", "dir", cfg.OutputDir)
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(store, appCache, cfg, metrics.NewAPI(), logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Tennis Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
