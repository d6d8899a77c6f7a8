package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	httpadapter "adsync/internal/adapter/http"
	"adsync/internal/adapter/notify"
	"adsync/internal/adapter/postgres"
	"adsync/internal/adapter/registry"
	"adsync/internal/adapter/renderer"
	"adsync/internal/adapter/usecase"
	"adsync/internal/config"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/db"
	"adsync/internal/worker"
)

// main is the entry point of the creative sync service. It loads
// configuration, optionally runs database migrations and demo seeding,
// initializes the database pool, the external-service clients and the
// background task manager, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server and drains the
// pending review tasks.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		case "pretty":
			handler = tint.NewHandler(os.Stdout, &tint.Options{Level: level, TimeFormat: time.TimeOnly})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	mode, err := domain.ParseApprovalMode(cfg.ApprovalMode)
	if err != nil {
		logger.Error("invalid approval mode", slog.Any("error", err))
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	tasks := worker.NewManager(worker.Config{
		Workers:   cfg.Review.Workers,
		QueueSize: cfg.Review.QueueSize,
		Retention: cfg.Review.Retention,
		Logger:    logger,
	})
	defer tasks.Close()

	var notifier port.Notifier
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.Notify)
	}

	svc := usecase.NewSyncService(usecase.Config{
		Repo:     postgres.NewCreativeRepository(pool),
		Registry: registry.NewClient(cfg.Registry, logger),
		Renderer: renderer.NewClient(cfg.Renderer),
		Workflow: postgres.NewWorkflowRepository(pool),
		Scorer:   renderer.NewScorer(cfg.Review),
		Notifier: notifier,
		Tasks:    tasks,
		Mode:     mode,
		Logger:   logger,
	})

	handler := httpadapter.NewHandler(svc, tasks, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("approval_mode", string(mode)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	exitCode = 0
}
