package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sommit1/topsis-web/internal/api"
	"github.com/Sommit1/topsis-web/internal/config"
	"github.com/Sommit1/topsis-web/internal/events"
	"github.com/Sommit1/topsis-web/internal/mailer"
	"github.com/Sommit1/topsis-web/internal/runner"
	"github.com/Sommit1/topsis-web/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// .env is optional; SMTP credentials usually live there.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage
	db := store.NewMemoryStore()
	files, err := store.NewFiles(cfg.Storage.UploadDir, cfg.Storage.ResultDir)
	if err != nil {
		logger.Error("failed to prepare storage dirs", "error", err)
		os.Exit(1)
	}
	logger.Info("storage ready", "uploads", cfg.Storage.UploadDir, "results", cfg.Storage.ResultDir)

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to nats, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to nats")
		}
	}

	// Mail delivery (optional)
	var mail mailer.Mailer
	if m, err := mailer.NewSMTPMailer(cfg.SMTP); err != nil {
		logger.Warn("email delivery disabled", "error", err)
	} else {
		mail = m
		logger.Info("email delivery enabled", "smtp", cfg.SMTP.Addr())
	}

	// Runner
	run := runner.New(db, files, mail, eventsClient, cfg.Runner.Workers, cfg.Runner.QueueSize, logger)
	run.Start(ctx)
	defer run.Stop()
	logger.Info("runner started", "workers", cfg.Runner.Workers, "queue_size", cfg.Runner.QueueSize)

	// API server
	router := api.NewRouter(db, files, run, eventsClient, cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
