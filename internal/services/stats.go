package services

import (
	"context"

	"devsites/internal/domain"
)

// StatsService serves the public company stats widget
type StatsService struct {
	store StatsStore
}

// NewStatsService creates a new stats service
func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

// Get never fails; the store substitutes defaults when counts are unavailable.
func (s *StatsService) Get(ctx context.Context) domain.Stats {
	return s.store.CompanyStats(ctx)
}
