package repository

import (
	"context"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BlogSlugConstraint is the unique index that guards blog_posts.slug.
const BlogSlugConstraint = "blog_posts_slug_key"

const blogColumns = `id, title, slug, description, content, image, category, status, views, created_at, updated_at`

// BlogRepository handles blog post data access.
type BlogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

func scanBlog(row pgx.Row, b *model.BlogPost) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Description, &b.Content,
		&b.Image, &b.Category, &b.Status, &b.Views, &b.CreatedAt, &b.UpdatedAt,
	)
}

func collectBlogs(rows pgx.Rows) ([]model.BlogPost, error) {
	defer rows.Close()

	posts := []model.BlogPost{}
	for rows.Next() {
		var b model.BlogPost
		if err := scanBlog(rows, &b); err != nil {
			return nil, classify(err)
		}
		posts = append(posts, b)
	}
	return posts, classify(rows.Err())
}

// Create inserts a new post. A slug clash surfaces as a *DuplicateError.
func (r *BlogRepository) Create(ctx context.Context, b *model.BlogPost) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO blog_posts (title, slug, description, content, image, category, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, views, created_at, updated_at`,
		b.Title, b.Slug, b.Description, b.Content, b.Image, b.Category, b.Status,
	).Scan(&b.ID, &b.Views, &b.CreatedAt, &b.UpdatedAt)
	return classify(err)
}

// Update writes every editable column of b.
func (r *BlogRepository) Update(ctx context.Context, b *model.BlogPost) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE blog_posts
		 SET title = $1, slug = $2, description = $3, content = $4, image = $5,
		     category = $6, status = $7, updated_at = NOW()
		 WHERE id = $8
		 RETURNING updated_at`,
		b.Title, b.Slug, b.Description, b.Content, b.Image, b.Category, b.Status, b.ID,
	).Scan(&b.UpdatedAt)
	return classify(err)
}

// Delete removes a post by ID.
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a post regardless of status.
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	b := &model.BlogPost{}
	row := r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	if err := scanBlog(row, b); err != nil {
		return nil, classify(err)
	}
	return b, nil
}

// GetBySlug retrieves a post by its slug regardless of status.
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	b := &model.BlogPost{}
	row := r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug)
	if err := scanBlog(row, b); err != nil {
		return nil, classify(err)
	}
	return b, nil
}

// SlugExists reports whether slug belongs to any post other than excludeID.
// Pass uuid.Nil to check against every post.
func (r *BlogRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}

// ListPublished returns every published post, newest first.
func (r *BlogRepository) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE status = $1 ORDER BY created_at DESC`,
		model.BlogStatusPublish,
	)
	if err != nil {
		return nil, classify(err)
	}
	return collectBlogs(rows)
}

// ListAll returns one page of posts in any status, newest first, plus the total count.
func (r *BlogRepository) ListAll(ctx context.Context, limit, offset int) ([]model.BlogPost, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&total); err != nil {
		return nil, 0, classify(err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blog_posts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, classify(err)
	}
	posts, err := collectBlogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// IncrementViews adds delta to the view counter of each post in one round trip.
func (r *BlogRepository) IncrementViews(ctx context.Context, deltas map[uuid.UUID]int64) error {
	if len(deltas) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for id, delta := range deltas {
		batch.Queue(`UPDATE blog_posts SET views = views + $1 WHERE id = $2`, delta, id)
	}
	return classify(r.pool.SendBatch(ctx, batch).Close())
}
