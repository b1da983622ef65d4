package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a project enquiry submitted from the site's contact form.
type Contact struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	BusinessName   string    `json:"businessName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ProjectDetails string    `json:"projectDetails"`
	Services       []string  `json:"services"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	FullName       string   `json:"fullName" binding:"required,max=200"`
	BusinessName   string   `json:"businessName" binding:"max=200"`
	Email          string   `json:"email" binding:"required,email,max=255"`
	Phone          string   `json:"phone" binding:"required,phone"`
	ProjectDetails string   `json:"projectDetails" binding:"max=5000"`
	Services       []string `json:"services" binding:"max=20,dive,max=100"`
}
