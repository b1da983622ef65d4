package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogStatus is the publication state of a post.
type BlogStatus string

const (
	BlogStatusDraft   BlogStatus = "draft"
	BlogStatusPublish BlogStatus = "publish"
)

// Valid reports whether s is one of the known statuses.
func (s BlogStatus) Valid() bool {
	return s == BlogStatusDraft || s == BlogStatusPublish
}

// BlogPost is a single article on the marketing blog.
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Status      BlogStatus `json:"status"`
	Views       int64      `json:"views"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateBlogRequest is the payload for a new post.
type CreateBlogRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Image       string     `json:"image" binding:"max=2048"`
	Category    string     `json:"category" binding:"max=100"`
	Status      BlogStatus `json:"status" binding:"omitempty,blogstatus"`
}

// UpdateBlogRequest carries a partial update; nil fields are left untouched.
type UpdateBlogRequest struct {
	Title       *string     `json:"title" binding:"omitempty,max=200"`
	Description *string     `json:"description"`
	Content     *string     `json:"content"`
	Image       *string     `json:"image" binding:"omitempty,max=2048"`
	Category    *string     `json:"category" binding:"omitempty,max=100"`
	Status      *BlogStatus `json:"status" binding:"omitempty,blogstatus"`
}
