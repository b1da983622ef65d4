package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/glinthive/site-backend/internal/model"
	"github.com/rs/zerolog"
)

// AdviceStore persists advice callback requests.
type AdviceStore interface {
	Create(ctx context.Context, a *model.Advice) error
	List(ctx context.Context) ([]model.Advice, error)
}

// AdviceService handles free-advice callback requests.
type AdviceService struct {
	advices AdviceStore
	inbox   InboxPublisher
	log     zerolog.Logger
}

// NewAdviceService creates a new AdviceService. inbox may be nil.
func NewAdviceService(advices AdviceStore, inbox InboxPublisher, log zerolog.Logger) *AdviceService {
	return &AdviceService{
		advices: advices,
		inbox:   inbox,
		log:     log.With().Str("component", "advice_service").Logger(),
	}
}

// Submit stores a validated request and notifies the admin inbox.
func (s *AdviceService) Submit(ctx context.Context, req model.AdviceRequest) (*model.Advice, error) {
	a := &model.Advice{
		Name:    strings.TrimSpace(req.Name),
		Mobile:  strings.TrimSpace(req.Mobile),
		Message: req.Message,
	}
	if err := s.advices.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("save advice: %w", err)
	}

	if s.inbox != nil {
		event := model.InboxEvent{
			Type:      model.InboxEventAdvice,
			ID:        a.ID.String(),
			Name:      a.Name,
			CreatedAt: a.CreatedAt,
		}
		if err := s.inbox.Publish(ctx, event); err != nil {
			s.log.Warn().Err(err).Str("id", event.ID).Msg("Inbox publish failed")
		}
	}
	return a, nil
}

// List returns every request, newest first.
func (s *AdviceService) List(ctx context.Context) ([]model.Advice, error) {
	advices, err := s.advices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list advices: %w", err)
	}
	return advices, nil
}
