package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/interfaces/http/response"
)

type ContactService interface {
	Submit(ctx context.Context, input *entities.ContactSubmitInput) (*entities.ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]*entities.ContactSubmission, error)
	GetInfo(ctx context.Context) (*entities.ContactInfo, error)
	UpdateInfo(ctx context.Context, input *entities.UpdateContactInfoInput) (*entities.ContactInfo, error)
}

type ContactHandler struct {
	contactUsecase ContactService
}

func NewContactHandler(contactUsecase ContactService) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// Submit accepts a public contact form message.
// POST /api/contact/submit
func (h *ContactHandler) Submit(c *gin.Context) {
	var input entities.ContactSubmitInput
	if !bindJSON(c, &input) {
		return
	}
	if _, err := h.contactUsecase.Submit(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Thank you for contacting us. We'll get back to you soon.")
}

// GET /api/contact/submissions
func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	items, err := h.contactUsecase.ListSubmissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GET /api/contact/info
func (h *ContactHandler) GetInfo(c *gin.Context) {
	info, err := h.contactUsecase.GetInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, info)
}

// PUT /api/contact/info
func (h *ContactHandler) UpdateInfo(c *gin.Context) {
	var input entities.UpdateContactInfoInput
	if !bindJSON(c, &input) {
		return
	}
	info, err := h.contactUsecase.UpdateInfo(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, info)
}
