package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glinthive/site-backend/internal/middleware"
	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/response"
	"github.com/glinthive/site-backend/internal/service"
	"github.com/google/uuid"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLogin godoc
// POST /api/admin/login
// Authenticates an admin and returns a JWT.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.AdminLoginResponse{
		Message: "Login successful",
		Token:   result.Token,
		Admin:   result.Admin.Public(),
	})
}

// CreateAdmin godoc
// POST /api/admin/create
// Registers another admin. Requires an authenticated admin.
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	admin, err := h.authService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Admin created",
		"admin":   admin.Public(),
	})
}

// GetAdminProfile godoc
// GET /api/admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	adminID, ok := currentAdminID(c)
	if !ok {
		return
	}

	admin, err := h.authService.GetProfile(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin.Public()})
}

// ChangePassword godoc
// PUT /api/admin/password
// Rotates the authenticated admin's own password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, ok := currentAdminID(c)
	if !ok {
		return
	}

	var req model.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), adminID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password updated")
}

// currentAdminID reads the admin id from the verified claims.
func currentAdminID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return uuid.Nil, false
	}
	identity, err := claims.Identity()
	if err != nil {
		response.Fail(c, http.StatusForbidden, response.ErrTokenInvalid)
		return uuid.Nil, false
	}
	return identity.AdminID, true
}
