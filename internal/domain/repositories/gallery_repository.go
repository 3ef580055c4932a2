package repositories

import (
	"context"

	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
)

type GalleryRepository interface {
	Create(ctx context.Context, image *entities.GalleryImage) error
	List(ctx context.Context) ([]*entities.GalleryImage, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
