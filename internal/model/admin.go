package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAdminRole is the only role the site issues today. Role stays an open
// string so tokens minted now remain readable if more tiers appear.
const DefaultAdminRole = "admin"

// Admin represents a site administrator.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminPublic is the projection of an Admin that may leave the server.
type AdminPublic struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// Public strips the password hash and timestamps.
func (a *Admin) Public() AdminPublic {
	return AdminPublic{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// AdminLoginRequest is the payload for admin authentication.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

// AdminLoginResponse is returned after successful admin login.
type AdminLoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	Admin   AdminPublic `json:"admin"`
}

// CreateAdminRequest is the payload for creating another admin.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,passwordbytes"`
}

// ChangePasswordRequest is the payload for an admin rotating their own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required,max=128"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,passwordbytes"`
}
