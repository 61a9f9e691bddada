package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anvaldez/p2p-data/internal/api"
	"github.com/anvaldez/p2p-data/internal/config"
	"github.com/anvaldez/p2p-data/internal/database"
	"github.com/anvaldez/p2p-data/internal/extractor"
	"github.com/anvaldez/p2p-data/internal/loader"
	"github.com/anvaldez/p2p-data/internal/metrics"
	"github.com/anvaldez/p2p-data/internal/ratelimit"
	"github.com/anvaldez/p2p-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/worker.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting worker",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"api_url", cfg.API.BaseURL,
		"interval", cfg.Extraction.Interval,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create API client
	apiClient := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, time.Second),
		api.WithRetryStatuses(cfg.API.RetryStatuses),
		api.WithEndpoints(cfg.API.PairsEndpoint, cfg.API.SearchEndpoint),
	)

	// Shared rate limiter across all extraction workers
	limiter := ratelimit.New(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.BurstSize, logger)

	ext := extractor.New(extractor.Config{
		Workers:         cfg.Extraction.Workers,
		PageSize:        cfg.Extraction.PageSize,
		MaxPagesPerPair: cfg.Extraction.MaxPagesPerPair,
	}, apiClient, limiter, logger)

	ldr := loader.New(pool, logger)

	// Start health and metrics server
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: createHealthHandler(pool, limiter, ldr, cfg.Metrics.Path),
	}

	go func() {
		logger.Info("starting health server", "port", cfg.Metrics.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	logger.Info("worker running",
		"instance_id", cfg.Instance.ID,
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port),
	)

	// Run one extraction immediately, then on every tick
	runExtraction(ctx, ext, ldr, limiter, logger)

	ticker := time.NewTicker(cfg.Extraction.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			healthServer.Shutdown(shutdownCtx)

			logger.Info("worker stopped")
			return
		case <-ticker.C:
			runExtraction(ctx, ext, ldr, limiter, logger)
		}
	}
}

// runExtraction performs one full extract-and-load cycle. Failures are
// logged and swallowed so the next tick always runs.
func runExtraction(ctx context.Context, ext *extractor.Extractor, ldr *loader.Loader, limiter *ratelimit.Limiter, logger *slog.Logger) {
	if ctx.Err() != nil {
		return
	}

	batchID := uuid.New()
	start := time.Now()
	logger.Info("extraction cycle starting", "batch_id", batchID)

	offers := ext.ExtractAll(ctx)
	if len(offers) == 0 {
		logger.Warn("extraction produced no offers", "batch_id", batchID)
		return
	}

	if err := ldr.LoadBatch(ctx, offers, batchID); err != nil {
		logger.Error("batch load failed", "batch_id", batchID, "error", err)
		return
	}

	rl := limiter.Stats()
	logger.Info("extraction cycle complete",
		"batch_id", batchID,
		"offers", len(offers),
		"duration", time.Since(start),
		"rate_limit_waits", rl.TotalWaits,
	)
}

// createHealthHandler creates the HTTP handler for health checks and metrics.
func createHealthHandler(pool *pgxpool.Pool, limiter *ratelimit.Limiter, ldr *loader.Loader, metricsPath string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		// Check database
		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["database"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["database"] = "connected"
		}

		rl := limiter.Stats()
		health.Components["rate_limiter"] = map[string]interface{}{
			"total_requests":  rl.TotalRequests,
			"total_waits":     rl.TotalWaits,
			"wait_percentage": rl.WaitPercentage,
		}

		ls := ldr.Stats()
		health.Components["loader"] = map[string]interface{}{
			"batches_loaded":   ls.BatchesLoaded,
			"batches_failed":   ls.BatchesFailed,
			"offers_processed": ls.OffersProcessed,
		}

		// Set response
		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	mux.Handle(metricsPath, metrics.Handler())

	return mux
}
