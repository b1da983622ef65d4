package repository

import (
	"context"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdviceRepository handles advice callback requests.
type AdviceRepository struct {
	pool *pgxpool.Pool
}

// NewAdviceRepository creates a new AdviceRepository.
func NewAdviceRepository(pool *pgxpool.Pool) *AdviceRepository {
	return &AdviceRepository{pool: pool}
}

// Create inserts a request.
func (r *AdviceRepository) Create(ctx context.Context, a *model.Advice) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO advices (name, mobile, message) VALUES ($1, $2, $3) RETURNING id, created_at`,
		a.Name, a.Mobile, a.Message,
	).Scan(&a.ID, &a.CreatedAt)
	return classify(err)
}

// List returns all requests, newest first.
func (r *AdviceRepository) List(ctx context.Context) ([]model.Advice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, mobile, message, created_at FROM advices ORDER BY created_at DESC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	advices := []model.Advice{}
	for rows.Next() {
		var a model.Advice
		if err := rows.Scan(&a.ID, &a.Name, &a.Mobile, &a.Message, &a.CreatedAt); err != nil {
			return nil, classify(err)
		}
		advices = append(advices, a)
	}
	return advices, classify(rows.Err())
}
