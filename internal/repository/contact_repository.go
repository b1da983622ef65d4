package repository

import (
	"context"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository handles contact form submissions.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Create inserts a submission.
func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	if c.Services == nil {
		c.Services = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (full_name, business_name, email, phone, project_details, services)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		c.FullName, c.BusinessName, c.Email, c.Phone, c.ProjectDetails, c.Services,
	).Scan(&c.ID, &c.CreatedAt)
	return classify(err)
}

// List returns all submissions, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, business_name, email, phone, project_details, services, created_at
		 FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(
			&c.ID, &c.FullName, &c.BusinessName, &c.Email, &c.Phone,
			&c.ProjectDetails, &c.Services, &c.CreatedAt,
		); err != nil {
			return nil, classify(err)
		}
		contacts = append(contacts, c)
	}
	return contacts, classify(rows.Err())
}
