package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"devsites/internal/config"
	"devsites/internal/domain"
	"devsites/internal/logger"
	"devsites/internal/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 10 * time.Minute
	pingTimeout     = 5 * time.Second
	sqliteBusyMS    = 5000
)

// Option tweaks the gorm configuration before the connection is opened.
type Option func(*gorm.Config)

// WithNowFunc overrides the clock used for record timestamps.
func WithNowFunc(now func() time.Time) Option {
	return func(c *gorm.Config) {
		c.NowFunc = func() time.Time { return now().UTC() }
	}
}

// Open connects to the database named by cfg.URL with connection pooling.
// postgres:// and postgresql:// URLs use Postgres; everything else is a SQLite path.
func Open(cfg config.DatabaseConfig, log *logger.Logger, opts ...Option) (*gorm.DB, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("db")

	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		log.Info("Connecting to PostgreSQL database")
		dialector = postgres.Open(cfg.URL)
	} else {
		dbPath := cfg.GetSQLitePath()
		log.Info("Connecting to SQLite database", "path", dbPath)
		sqlDB, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		// One connection: SQLite has a single writer, and every
		// connection to :memory: would otherwise be a separate database.
		sqlDB.SetMaxOpenConns(1)
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        dbPath,
			Conn:       sqlDB,
		}
	}

	// Never log SQL queries; errors are still returned to callers.
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(gormConfig)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.IsPostgres() {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
		log.Info("Connection pool configured", "max_open", maxOpenConns, "max_idle", maxIdleConns)
	} else if _, err := sqlDB.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", sqliteBusyMS)); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := HealthCheck(context.Background(), db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables and indexes of every record type.
// The unique index on newsletter_subscribers.email backs the signup upsert.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Contact{},
		&domain.ProjectInquiry{},
		&domain.NewsletterSubscriber{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the database and refreshes the pool gauges.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	stats := sqlDB.Stats()
	metrics.UpdateDBConnections(stats.InUse, stats.Idle)
	return nil
}

// GetStats returns database connection statistics
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	stats := sqlDB.Stats()
	return &stats, nil
}
