package service

import (
	"context"
	"errors"
	"time"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockAdminRepo struct {
	getByUsernameFn  func(ctx context.Context, username string) (*model.Admin, error)
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	existsFn         func(ctx context.Context, username, email string) (bool, error)
	createFn         func(ctx context.Context, a *model.Admin) error
	updatePasswordFn func(ctx context.Context, id uuid.UUID, hash string) error
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, username, email)
	}
	return false, nil
}

func (m *mockAdminRepo) Create(ctx context.Context, a *model.Admin) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	return nil
}

func (m *mockAdminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

// countingHasher is a fast real hasher that records how often Verify runs.
type countingHasher struct {
	inner    *BcryptHasher
	verifies int
}

func newCountingHasher() *countingHasher {
	return &countingHasher{inner: NewBcryptHasher(bcrypt.MinCost)}
}

func (h *countingHasher) Hash(password string) (string, error) { return h.inner.Hash(password) }

func (h *countingHasher) Verify(hash, password string) error {
	h.verifies++
	return h.inner.Verify(hash, password)
}

// memBlogStore is an in-memory BlogStore enforcing slug uniqueness.
type memBlogStore struct {
	posts map[uuid.UUID]*model.BlogPost

	// raceSlugs are reported free by SlugExists but rejected on write,
	// simulating a concurrent writer.
	raceSlugs map[string]bool
	listErr   error
}

func newMemBlogStore() *memBlogStore {
	return &memBlogStore{posts: map[uuid.UUID]*model.BlogPost{}, raceSlugs: map[string]bool{}}
}

func (m *memBlogStore) slugTaken(slug string, exclude uuid.UUID) bool {
	for id, p := range m.posts {
		if p.Slug == slug && id != exclude {
			return true
		}
	}
	return false
}

func (m *memBlogStore) Create(_ context.Context, b *model.BlogPost) error {
	if m.raceSlugs[b.Slug] || m.slugTaken(b.Slug, uuid.Nil) {
		return &repository.DuplicateError{Constraint: repository.BlogSlugConstraint}
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	m.posts[b.ID] = &cp
	return nil
}

func (m *memBlogStore) Update(_ context.Context, b *model.BlogPost) error {
	if _, ok := m.posts[b.ID]; !ok {
		return repository.ErrNotFound
	}
	if m.raceSlugs[b.Slug] || m.slugTaken(b.Slug, b.ID) {
		return &repository.DuplicateError{Constraint: repository.BlogSlugConstraint}
	}
	b.UpdatedAt = time.Now()
	cp := *b
	m.posts[b.ID] = &cp
	return nil
}

func (m *memBlogStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memBlogStore) GetByID(_ context.Context, id uuid.UUID) (*model.BlogPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memBlogStore) GetBySlug(_ context.Context, slug string) (*model.BlogPost, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memBlogStore) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return m.slugTaken(slug, excludeID), nil
}

func (m *memBlogStore) ListPublished(_ context.Context) ([]model.BlogPost, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []model.BlogPost{}
	for _, p := range m.posts {
		if p.Status == model.BlogStatusPublish {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memBlogStore) ListAll(_ context.Context, limit, offset int) ([]model.BlogPost, int, error) {
	all := []model.BlogPost{}
	for _, p := range m.posts {
		all = append(all, *p)
	}
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

var errMiss = errors.New("miss")

// memCache is an in-memory Cache that records deletions.
type memCache struct {
	data    map[string][]byte
	deleted []string
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return nil, errMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

type mockViews struct {
	recorded []uuid.UUID
	err      error
}

func (v *mockViews) Record(_ context.Context, id uuid.UUID) error {
	v.recorded = append(v.recorded, id)
	return v.err
}

type mockInbox struct {
	events []model.InboxEvent
	err    error
}

func (m *mockInbox) Publish(_ context.Context, e model.InboxEvent) error {
	m.events = append(m.events, e)
	return m.err
}
