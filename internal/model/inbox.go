package model

import "time"

// InboxEventType names the kind of submission carried by an InboxEvent.
type InboxEventType string

const (
	InboxEventContact InboxEventType = "contact"
	InboxEventAdvice  InboxEventType = "advice"
)

// InboxEvent is broadcast to connected admins whenever a visitor submits a form.
type InboxEvent struct {
	Type      InboxEventType `json:"type"`
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
}
