package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sky/skygo/internal/api"
	"github.com/sky/skygo/internal/auth"
	"github.com/sky/skygo/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// SKYGO_CONFIG points at an optional YAML file; all settings also
	// accept SKYGO_* environment overrides.
	cfg, err := config.Load(os.Getenv("SKYGO_CONFIG"), logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("config",
		"http_addr", cfg.HTTPAddr,
		"trust_proxy", cfg.TrustProxy,
		"auth_enabled", cfg.AuthEnabled,
		"batch_workers", cfg.BatchWorkers,
		"batch_parallel_threshold", cfg.BatchParallelThreshold,
	)

	srv := api.NewServer(cfg.HTTPAddr, logger, auth.Config{
		Enabled: cfg.AuthEnabled,
		Token:   cfg.AuthToken,
	}, api.Options{
		TrustProxy:             cfg.TrustProxy,
		BatchWorkers:           cfg.BatchWorkers,
		BatchParallelThreshold: cfg.BatchParallelThreshold,
	})

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "auth_enabled", cfg.AuthEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
