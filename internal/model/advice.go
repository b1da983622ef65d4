package model

import (
	"time"

	"github.com/google/uuid"
)

// Advice is a free-consultation callback request.
type Advice struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdviceRequest is the public advice form payload.
type AdviceRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Mobile  string `json:"mobile" binding:"required,phone"`
	Message string `json:"message" binding:"max=5000"`
}
