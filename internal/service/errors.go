package service

import (
	"errors"

	"github.com/glinthive/site-backend/internal/repository"
)

// Domain errors returned by the services. Handlers map them onto HTTP codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrDuplicateSlug      = errors.New("slug already taken")
	ErrEmptySlug          = errors.New("title must contain at least one letter or digit")
)

// ErrUnavailable is the storage timeout kind, re-exported so handlers only
// need to know about this package.
var ErrUnavailable = repository.ErrUnavailable
