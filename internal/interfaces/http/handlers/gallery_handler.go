package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/domain/repositories"
	"interact-club.backend/internal/interfaces/http/response"
)

// GalleryHandler has no update; images are replaced by delete and create.
type GalleryHandler struct {
	repo repositories.GalleryRepository
}

func NewGalleryHandler(repo repositories.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{repo: repo}
}

// GET /api/gallery
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// POST /api/gallery
func (h *GalleryHandler) CreateGalleryImage(c *gin.Context) {
	var input entities.CreateGalleryImageInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	image := &entities.GalleryImage{URL: input.URL, Caption: input.Caption}
	if err := h.repo.Create(c.Request.Context(), image); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, image)
}

// DELETE /api/gallery/:id
func (h *GalleryHandler) DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c, "gallery image")
	if !ok {
		return
	}
	if err := h.repo.SoftDelete(c.Request.Context(), id); err != nil {
		response.Error(c, notFoundAs(err, "Gallery image not found"))
		return
	}
	response.Message(c, http.StatusOK, "Gallery image deleted successfully")
}
