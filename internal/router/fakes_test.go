package router

import (
	"context"
	"sync"
	"time"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/repository"
	"github.com/google/uuid"
)

type fakeAdmins struct {
	mu     sync.Mutex
	admins []*model.Admin
}

func (f *fakeAdmins) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdmins) GetByID(_ context.Context, id uuid.UUID) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdmins) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Username == username || a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdmins) Create(_ context.Context, a *model.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	cp := *a
	f.admins = append(f.admins, &cp)
	return nil
}

func (f *fakeAdmins) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.ID == id {
			a.PasswordHash = hash
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeBlogs struct {
	mu    sync.Mutex
	posts []*model.BlogPost
	// failWith makes every call return this error.
	failWith error
}

func (f *fakeBlogs) find(id uuid.UUID) *model.BlogPost {
	for _, p := range f.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (f *fakeBlogs) Create(_ context.Context, b *model.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.posts = append(f.posts, &cp)
	return nil
}

func (f *fakeBlogs) Update(_ context.Context, b *model.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.find(b.ID)
	if p == nil {
		return repository.ErrNotFound
	}
	b.UpdatedAt = time.Now()
	*p = *b
	return nil
}

func (f *fakeBlogs) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeBlogs) GetByID(_ context.Context, id uuid.UUID) (*model.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if p := f.find(id); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBlogs) GetBySlug(_ context.Context, slug string) (*model.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBlogs) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, p := range f.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogs) ListPublished(_ context.Context) ([]model.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []model.BlogPost{}
	for i := len(f.posts) - 1; i >= 0; i-- {
		if f.posts[i].Status == model.BlogStatusPublish {
			out = append(out, *f.posts[i])
		}
	}
	return out, nil
}

func (f *fakeBlogs) ListAll(_ context.Context, limit, offset int) ([]model.BlogPost, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.BlogPost{}
	for i := len(f.posts) - 1; i >= 0; i-- {
		out = append(out, *f.posts[i])
	}
	total := len(out)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	return out[offset:end], total, nil
}

type fakeContacts struct {
	mu       sync.Mutex
	contacts []model.Contact
}

func (f *fakeContacts) Create(_ context.Context, c *model.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	f.contacts = append([]model.Contact{*c}, f.contacts...)
	return nil
}

func (f *fakeContacts) List(context.Context) ([]model.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Contact{}, f.contacts...), nil
}

type fakeAdvices struct {
	mu      sync.Mutex
	advices []model.Advice
}

func (f *fakeAdvices) Create(_ context.Context, a *model.Advice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	f.advices = append([]model.Advice{*a}, f.advices...)
	return nil
}

func (f *fakeAdvices) List(context.Context) ([]model.Advice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Advice{}, f.advices...), nil
}

type fakeStats struct {
	blogs    *fakeBlogs
	contacts *fakeContacts
	advices  *fakeAdvices
}

func (f *fakeStats) Counts(context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{
		TotalBlogs:    len(f.blogs.posts),
		TotalContacts: len(f.contacts.contacts),
		TotalAdvices:  len(f.advices.advices),
	}, nil
}

// fakeInbox is both the publisher and the listener side of the inbox.
type fakeInbox struct {
	mu        sync.Mutex
	published []model.InboxEvent
	listeners []chan model.InboxEvent
}

func (f *fakeInbox) Publish(_ context.Context, e model.InboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, e)
	for _, l := range f.listeners {
		select {
		case l <- e:
		default:
		}
	}
	return nil
}

func (f *fakeInbox) Listen(ctx context.Context) (<-chan model.InboxEvent, error) {
	ch := make(chan model.InboxEvent, 8)
	f.mu.Lock()
	f.listeners = append(f.listeners, ch)
	f.mu.Unlock()
	return ch, nil
}

func (f *fakeInbox) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}
