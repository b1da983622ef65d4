package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminStore is the credential store the auth flow reads and writes.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, a *model.Admin) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	Admin *model.Admin
}

// AuthService handles admin login, creation and password management.
type AuthService struct {
	admins    AdminStore
	hasher    PasswordHasher
	tokens    *TokenIssuer
	dummyHash string
	log       zerolog.Logger
}

// NewAuthService creates a new AuthService. It hashes a throwaway password once
// so that logins for unknown usernames can spend the same bcrypt work.
func NewAuthService(admins AdminStore, hasher PasswordHasher, tokens *TokenIssuer, log zerolog.Logger) (*AuthService, error) {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &AuthService{
		admins:    admins,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
		log:       log.With().Str("component", "auth_service").Logger(),
	}, nil
}

// Login checks the credentials and issues a token. An unknown username and a
// wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.admins.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = s.hasher.Verify(s.dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := s.hasher.Verify(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(Identity{
		AdminID:  admin.ID,
		Role:     admin.Role,
		Username: admin.Username,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", admin.ID.String()).Msg("Admin logged in")
	return &LoginResult{Token: token, Admin: admin}, nil
}

// CreateAdmin registers another admin account.
func (s *AuthService) CreateAdmin(ctx context.Context, req model.CreateAdminRequest) (*model.Admin, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.admins.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil, ErrAdminExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.DefaultAdminRole,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info().Str("admin_id", admin.ID.String()).Str("username", admin.Username).Msg("Admin created")
	return admin, nil
}

// GetProfile returns the admin behind a verified token.
func (s *AuthService) GetProfile(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}

// ChangePassword replaces the admin's password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	admin, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if err := s.hasher.Verify(admin.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.admins.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info().Str("admin_id", id.String()).Msg("Admin password changed")
	return nil
}
