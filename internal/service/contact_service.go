package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/rs/zerolog"
)

// ContactStore persists contact form submissions.
type ContactStore interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
}

// ContactService handles contact form submissions.
type ContactService struct {
	contacts ContactStore
	inbox    InboxPublisher
	log      zerolog.Logger
}

// NewContactService creates a new ContactService. inbox may be nil.
func NewContactService(contacts ContactStore, inbox InboxPublisher, log zerolog.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		inbox:    inbox,
		log:      log.With().Str("component", "contact_service").Logger(),
	}
}

// Submit stores a validated submission and notifies the admin inbox.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (*model.Contact, error) {
	services := make([]string, 0, len(req.Services))
	for _, svc := range req.Services {
		if svc = strings.TrimSpace(svc); svc != "" {
			services = append(services, svc)
		}
	}

	c := &model.Contact{
		FullName:       strings.TrimSpace(req.FullName),
		BusinessName:   strings.TrimSpace(req.BusinessName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		ProjectDetails: req.ProjectDetails,
		Services:       services,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("save contact: %w", err)
	}

	s.notify(ctx, model.InboxEvent{
		Type:      model.InboxEventContact,
		ID:        c.ID.String(),
		Name:      c.FullName,
		CreatedAt: c.CreatedAt,
	})
	return c, nil
}

// List returns every submission, newest first.
func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) notify(ctx context.Context, event model.InboxEvent) {
	if s.inbox == nil {
		return
	}
	if err := s.inbox.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("id", event.ID).Msg("Inbox publish failed")
	}
}
