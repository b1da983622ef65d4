package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/response"
	"github.com/glinthive/site-backend/internal/service"
)

// SubmissionHandler handles the public contact and advice forms.
type SubmissionHandler struct {
	contactService *service.ContactService
	adviceService  *service.AdviceService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(contactService *service.ContactService, adviceService *service.AdviceService) *SubmissionHandler {
	return &SubmissionHandler{contactService: contactService, adviceService: adviceService}
}

// SubmitContact godoc
// POST /api/contact
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var req model.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.contactService.Submit(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Contact saved")
}

// ListContacts godoc
// GET /api/contacts
func (h *SubmissionHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contacts)
}

// SubmitAdvice godoc
// POST /api/advice
func (h *SubmissionHandler) SubmitAdvice(c *gin.Context) {
	var req model.AdviceRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.adviceService.Submit(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Advice saved")
}

// ListAdvices godoc
// GET /api/advices
func (h *SubmissionHandler) ListAdvices(c *gin.Context) {
	advices, err := h.adviceService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, advices)
}
