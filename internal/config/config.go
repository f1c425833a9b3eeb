package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	API      APIConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name    string `env:"APP_NAME" envDefault:"DEVSITES404 API"`
	Version string `env:"APP_VERSION" envDefault:"1.0.0"`
	Debug   bool   `env:"DEBUG" envDefault:"false"`
	Host    string `env:"HOST" envDefault:"0.0.0.0"`
	Port    string `env:"PORT" envDefault:"8001"`
	LogMode string `env:"LOG_MODE" envDefault:"development"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" envDefault:"sqlite:///./devsites.db"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"*"`
	MaxAge         int      `env:"CORS_MAX_AGE" envDefault:"86400"`
}

// APIConfig holds request-shaping limits
type APIConfig struct {
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"100"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE" envDefault:"500"`
}

// Load loads configuration from the environment, reading a .env file first
// when one exists.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.API.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be greater than 0")
	}
	if cfg.API.MaxPageSize < cfg.API.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE must not be smaller than DEFAULT_PAGE_SIZE")
	}
	return nil
}

// Addr returns the listen address
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsPostgres checks if the database URL is for PostgreSQL
func (c *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// GetSQLitePath extracts SQLite database path from URL
// Converts: sqlite:///./devsites.db -> ./devsites.db
func (c *DatabaseConfig) GetSQLitePath() string {
	if path, ok := strings.CutPrefix(c.URL, "sqlite:///"); ok {
		return path
	}
	if path, ok := strings.CutPrefix(c.URL, "sqlite://"); ok {
		return path
	}
	return c.URL
}

// AllowsAnyOrigin reports whether CORS is open to every origin
func (c *CORSConfig) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}
