package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/domain/repositories"
	"interact-club.backend/internal/interfaces/http/response"
)

type SettingsHandler struct {
	repo repositories.SettingsRepository
}

func NewSettingsHandler(repo repositories.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// GET /api/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.repo.GetSiteSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// UpdateSettings applies a partial update to the home page statistics.
// PUT /api/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var input entities.UpdateSiteSettingsInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	ctx := c.Request.Context()
	settings, err := h.repo.GetSiteSettings(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.Apply(settings)
	if err := h.repo.SaveSiteSettings(ctx, settings); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}
