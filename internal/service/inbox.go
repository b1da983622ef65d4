package service

import (
	"context"

	"github.com/glinthive/site-backend/internal/model"
)

// InboxPublisher notifies connected admins about new submissions.
type InboxPublisher interface {
	Publish(ctx context.Context, event model.InboxEvent) error
}
