package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glinthive/site-backend/internal/response"
	"github.com/glinthive/site-backend/internal/service"
	"github.com/glinthive/site-backend/internal/validator"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// respondError maps a service error onto the HTTP error taxonomy. Anything
// unrecognised is logged and reported as a bare 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrInvalidToken):
		response.Fail(c, http.StatusForbidden, response.ErrTokenInvalid)
	case errors.Is(err, service.ErrWrongPassword):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrWrongPassword,
			map[string]string{"currentPassword": response.GetMessage(response.ErrWrongPassword)})
	case errors.Is(err, service.ErrEmptySlug):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"title": err.Error()})
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
	case errors.Is(err, service.ErrBlogNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrBlogNotFound)
	case errors.Is(err, service.ErrAdminNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrAdminNotFound)
	case errors.Is(err, service.ErrAdminExists):
		response.Fail(c, http.StatusConflict, response.ErrAdminExists)
	case errors.Is(err, service.ErrDuplicateSlug):
		response.Fail(c, http.StatusConflict, response.ErrDuplicateSlug)
	case errors.Is(err, service.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("Storage unavailable")
		response.Unavailable(c)
	default:
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Unhandled error")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// parseID reads a UUID path parameter, writing a 400 when it is malformed.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds and validates the body, writing a 400 with field details on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if fields := validator.Bind(c, dst); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return false
	}
	return true
}
