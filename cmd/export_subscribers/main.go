package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"devsites/internal/config"
	"devsites/internal/database"
	"devsites/internal/domain"
	"devsites/internal/logger"
	"devsites/internal/store"
)

func main() {
	all := flag.Bool("all", false, "include unsubscribed addresses")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// zap writes to stderr, so stdout carries only the CSV
	log, err := logger.New(cfg.App.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(context.Background(), cfg, *all, os.Stdout, log); err != nil {
		log.Fatal("Export failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, all bool, w io.Writer, log *logger.Logger) error {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("Error closing database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	subs, err := store.New(db, log).ListNewsletterSubscribers(ctx, !all)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}
	if err := writeCSV(w, subs); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	log.Info("Exported subscribers", "count", len(subs), "all", all)
	return nil
}

func writeCSV(w io.Writer, subs []domain.NewsletterSubscriber) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"id", "email", "subscribed", "created_at", "updated_at"}); err != nil {
		return err
	}
	for _, s := range subs {
		record := []string{
			s.ID,
			s.Email,
			fmt.Sprintf("%t", s.Subscribed),
			s.CreatedAt.UTC().Format(time.RFC3339),
			s.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
