package service

import (
	"context"
	"fmt"

	"github.com/glinthive/site-backend/internal/model"
)

// StatsStore provides the dashboard aggregates.
type StatsStore interface {
	Counts(ctx context.Context) (*model.DashboardStats, error)
}

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	stats StatsStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(stats StatsStore) *DashboardService {
	return &DashboardService{stats: stats}
}

// GetStats returns the headline counters.
func (s *DashboardService) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return stats, nil
}
