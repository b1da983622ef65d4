package repository

import (
	"context"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository runs the aggregate queries behind the admin dashboard.
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Counts fetches all headline totals in a single query.
func (r *StatsRepository) Counts(ctx context.Context) (*model.DashboardStats, error) {
	s := &model.DashboardStats{}
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM blog_posts),
			(SELECT COUNT(*) FROM contacts),
			(SELECT COUNT(*) FROM advices)
	`).Scan(&s.TotalBlogs, &s.TotalContacts, &s.TotalAdvices)
	if err != nil {
		return nil, classify(err)
	}
	return s, nil
}
