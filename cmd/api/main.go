package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"devsites/internal/config"
	"devsites/internal/database"
	"devsites/internal/logger"
	"devsites/internal/server"
	"devsites/internal/services"
	"devsites/internal/store"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	log.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "debug", cfg.App.Debug, "addr", cfg.App.Addr())

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if stats, err := database.GetStats(db); err == nil {
			log.Info("Closing database connections", "open", stats.OpenConnections, "in_use", stats.InUse)
		}
		if err := database.Close(db); err != nil {
			log.Error("Error closing database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	st := store.New(db, log)
	handler := server.New(cfg, server.Services{
		Health:     services.NewHealthService(db, cfg.App.Name, cfg.App.Version, log),
		Contact:    services.NewContactService(st, cfg.API, log),
		Inquiry:    services.NewInquiryService(st, cfg.API, log),
		Newsletter: services.NewNewsletterService(st, log),
		Stats:      services.NewStatsService(st),
	}, log)

	httpLog, err := zap.NewStdLogAt(log.SugaredLogger.Desugar().Named("http"), zap.WarnLevel)
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     httpLog,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Starting graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("Error during graceful shutdown", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Shutdown timeout exceeded, forcing close")
			_ = httpServer.Close()
		}
	}

	log.Info("Server shutdown complete")
	return nil
}
