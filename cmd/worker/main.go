package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mrodrig/grana/internal/config"
	"github.com/mrodrig/grana/internal/database"
	"github.com/mrodrig/grana/internal/recurring"
	recurringStore "github.com/mrodrig/grana/internal/recurring/store"
	"github.com/mrodrig/grana/internal/scheduler"
	"github.com/mrodrig/grana/internal/synthesis"
	synthesisStore "github.com/mrodrig/grana/internal/synthesis/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		scheduleService = recurring.NewService(recurringStore.New(db))
		synthService    = synthesis.NewService(synthesisStore.New(db))
		runner          = scheduler.NewRunner(scheduleService, synthService, cfg.Worker.Concurrency)
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting worker", "interval", cfg.Worker.Interval, "concurrency", cfg.Worker.Concurrency)

	if err := runner.Run(ctx, cfg.Worker.Interval); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("worker failed", "error", err)
		os.Exit(1)
	}

	slog.Info("worker stopped")
}
