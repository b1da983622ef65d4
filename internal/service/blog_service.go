package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glinthive/site-backend/internal/config"
	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/repository"
	"github.com/glinthive/site-backend/internal/slug"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxSlugAttempts bounds how many suffixed candidates are tried before a
// title is rejected as a duplicate.
const MaxSlugAttempts = 50

// Page size limits for the admin listing.
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// BlogStore is the persistence the blog service needs.
type BlogStore interface {
	Create(ctx context.Context, b *model.BlogPost) error
	Update(ctx context.Context, b *model.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	ListPublished(ctx context.Context) ([]model.BlogPost, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.BlogPost, int, error)
}

// Cache is a byte cache with expiry. Get returns an error on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ViewRecorder counts public page views.
type ViewRecorder interface {
	Record(ctx context.Context, blogID uuid.UUID) error
}

// BlogPage is one page of the admin listing.
type BlogPage struct {
	Blogs   []model.BlogPost `json:"blogs"`
	Page    int              `json:"page"`
	PerPage int              `json:"perPage"`
	Total   int              `json:"total"`
}

// BlogService handles blog business logic.
type BlogService struct {
	posts BlogStore
	cache Cache
	views ViewRecorder
	ttl   time.Duration
	log   zerolog.Logger
}

// NewBlogService creates a new BlogService. cache and views may be nil.
func NewBlogService(posts BlogStore, cache Cache, views ViewRecorder, ttl time.Duration, log zerolog.Logger) *BlogService {
	return &BlogService{
		posts: posts,
		cache: cache,
		views: views,
		ttl:   ttl,
		log:   log.With().Str("component", "blog_service").Logger(),
	}
}

// Create stores a new post under a unique slug derived from its title.
func (s *BlogService) Create(ctx context.Context, req model.CreateBlogRequest) (*model.BlogPost, error) {
	base := slug.Make(req.Title)
	if base == "" {
		return nil, ErrEmptySlug
	}

	status := req.Status
	if status == "" {
		status = model.BlogStatusPublish
	}

	post := &model.BlogPost{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		Category:    req.Category,
		Status:      status,
	}
	if err := s.saveWithSlug(ctx, post, base, s.posts.Create); err != nil {
		return nil, err
	}

	s.invalidate(ctx, post.Slug)
	s.log.Info().Str("blog_id", post.ID.String()).Str("slug", post.Slug).Msg("Blog created")
	return post, nil
}

// Update applies the non-nil fields of req. The slug is re-derived only when
// a title is supplied.
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBlogRequest) (*model.BlogPost, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := post.Slug

	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	if req.Title != nil {
		base := slug.Make(*req.Title)
		if base == "" {
			return nil, ErrEmptySlug
		}
		post.Title = strings.TrimSpace(*req.Title)
		err = s.saveWithSlug(ctx, post, base, s.posts.Update)
	} else {
		err = s.posts.Update(ctx, post)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		if errors.Is(err, ErrDuplicateSlug) {
			return nil, err
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	s.invalidate(ctx, oldSlug, post.Slug)
	s.log.Info().Str("blog_id", post.ID.String()).Str("slug", post.Slug).Msg("Blog updated")
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("delete blog: %w", err)
	}

	s.invalidate(ctx, post.Slug)
	s.log.Info().Str("blog_id", id.String()).Msg("Blog deleted")
	return nil
}

// GetByID returns a post in any status.
func (s *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return post, nil
}

// GetPublishedBySlug returns a published post and records a view. Drafts are
// reported as not found.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, postSlug string) (*model.BlogPost, error) {
	key := config.CacheKey.BlogSlugKey(postSlug)

	post := &model.BlogPost{}
	if !s.cacheGet(ctx, key, post) {
		found, err := s.posts.GetBySlug(ctx, postSlug)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrBlogNotFound
			}
			return nil, fmt.Errorf("get blog: %w", err)
		}
		if found.Status != model.BlogStatusPublish {
			return nil, ErrBlogNotFound
		}
		post = found
		s.cacheSet(ctx, key, post)
	}

	if s.views != nil {
		if err := s.views.Record(ctx, post.ID); err != nil {
			s.log.Warn().Err(err).Str("blog_id", post.ID.String()).Msg("Failed to record view")
		}
	}
	return post, nil
}

// ListPublished returns published posts, newest first.
func (s *BlogService) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	key := config.CacheKey.PublishedBlogsKey()

	var posts []model.BlogPost
	if s.cacheGet(ctx, key, &posts) {
		return posts, nil
	}

	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	s.cacheSet(ctx, key, posts)
	return posts, nil
}

// ListAll returns one page of posts in every status, newest first.
func (s *BlogService) ListAll(ctx context.Context, page, perPage int) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	posts, total, err := s.posts.ListAll(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return &BlogPage{Blogs: posts, Page: page, PerPage: perPage, Total: total}, nil
}

// saveWithSlug picks the first free candidate among base, base-2, base-3...
// and writes the post under it. A unique violation at write time means another
// writer took the candidate first, so the next one is tried.
func (s *BlogService) saveWithSlug(ctx context.Context, post *model.BlogPost, base string,
	write func(context.Context, *model.BlogPost) error) error {
	for n := 1; n <= MaxSlugAttempts; n++ {
		candidate := slug.WithSuffix(base, n)

		taken, err := s.posts.SlugExists(ctx, candidate, post.ID)
		if err != nil {
			return fmt.Errorf("check slug: %w", err)
		}
		if taken {
			continue
		}

		post.Slug = candidate
		err = write(ctx, post)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
		s.log.Debug().Str("slug", candidate).Msg("Slug taken concurrently, trying next")
	}
	return ErrDuplicateSlug
}

func (s *BlogService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Discarding corrupt cache entry")
		return false
	}
	return true
}

func (s *BlogService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// invalidate drops the published listing and the given slug entries.
func (s *BlogService) invalidate(ctx context.Context, slugs ...string) {
	if s.cache == nil {
		return
	}
	keys := []string{config.CacheKey.PublishedBlogsKey()}
	for _, sl := range slugs {
		keys = append(keys, config.CacheKey.BlogSlugKey(sl))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}
