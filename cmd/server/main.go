package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/config"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/container"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env, cfg.Logging.Level)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dependency injection container
	app, err := container.NewContainer(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("error closing application", slog.String("error", err.Error()))
		}
	}()

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Server.Start()
	}()

	log.Info("server started",
		slog.String("addr", app.Server.Addr()),
		slog.String("env", cfg.Server.Env),
		slog.String("storage", cfg.Storage.Type),
	)

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error("server error", slog.String("error", err.Error()))
		}
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", slog.String("error", err.Error()))
	}

	log.Info("server exited properly")
}
