package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/interfaces/http/response"
	"interact-club.backend/internal/usecases"
)

type Seeder interface {
	Seed(ctx context.Context) (*usecases.SeedResult, error)
}

type SeedHandler struct {
	seeder Seeder
}

func NewSeedHandler(seeder Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// SeedDatabase loads sample content into an empty store.
// POST /api/seed-database
func (h *SeedHandler) SeedDatabase(c *gin.Context) {
	result, err := h.seeder.Seed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Seeded {
		response.Success(c, http.StatusOK, gin.H{"message": "Database already has data. Skipping seed.", "result": result})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Database seeded successfully", "result": result})
}
