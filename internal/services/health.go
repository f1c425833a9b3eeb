package services

import (
	"context"

	"gorm.io/gorm"

	"devsites/internal/database"
	"devsites/internal/logger"
)

const (
	apiBanner     = "DEVSITES404 API is running"
	statusHealthy = "healthy"
	statusDegrade = "degraded"
)

// HealthService implements the health and banner endpoints
type HealthService struct {
	db      *gorm.DB
	service string
	version string
	log     *logger.Logger
}

// NewHealthService creates a new health service
func NewHealthService(db *gorm.DB, service, version string, log *logger.Logger) *HealthService {
	if log == nil {
		log = logger.Nop()
	}
	return &HealthService{db: db, service: service, version: version, log: log.Component("health")}
}

// Check implements the health check method. A failed database ping
// degrades the status but still answers.
func (s *HealthService) Check(ctx context.Context) *HealthResult {
	status := statusHealthy
	if err := database.HealthCheck(ctx, s.db); err != nil {
		s.log.Warn("Database health check failed", "error", err)
		status = statusDegrade
	}
	return &HealthResult{Status: status, Service: s.service}
}

// Root returns the API banner
func (s *HealthService) Root(_ context.Context) *RootResult {
	return &RootResult{Message: apiBanner, Version: s.version}
}
