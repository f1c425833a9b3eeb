// Package store persists contact submissions, project inquiries and
// newsletter subscribers. Every method is a single request-scoped unit of
// work; the database provides atomicity.
package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"devsites/internal/domain"
	"devsites/internal/logger"
	"devsites/internal/metrics"
)

// Store is the record store. Construct one at startup and share it.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

// New creates a store over an open, migrated database.
func New(db *gorm.DB, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{db: db, log: log.Component("store")}
}

func (s *Store) now() time.Time {
	return s.db.NowFunc()
}

func observe(operation string, start time.Time, err error) {
	metrics.RecordDBQuery(operation, time.Since(start), err)
}

// newestFirst orders by creation time, breaking ties by id so pages are stable.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// page applies skip/limit. A non-positive limit means no limit.
func page(skip, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skip > 0 {
			db = db.Offset(skip)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db
	}
}

// CompanyStats counts records for the public stats widget. It never fails:
// when any count cannot be read the fixed defaults are returned.
func (s *Store) CompanyStats(ctx context.Context) domain.Stats {
	start := time.Now()
	db := s.db.WithContext(ctx)

	var contacts, inquiries, subscribers int64
	err := db.Model(&domain.Contact{}).Count(&contacts).Error
	if err == nil {
		err = db.Model(&domain.ProjectInquiry{}).Count(&inquiries).Error
	}
	if err == nil {
		err = db.Model(&domain.NewsletterSubscriber{}).Where("subscribed = ?", true).Count(&subscribers).Error
	}
	observe("company_stats", start, err)

	if err != nil {
		s.log.Error("Error getting company stats, serving defaults", "error", err)
		metrics.RecordStatsFallback()
		return domain.DefaultStats()
	}
	return domain.NewStats(contacts, inquiries, subscribers)
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
