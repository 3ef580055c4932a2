package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"interact-club.backend/internal/domain/entities"
	domainerrors "interact-club.backend/internal/domain/errors"
	"interact-club.backend/internal/infrastructure/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(ctx context.Context, image *entities.GalleryImage) error {
	m := &models.GalleryImage{ID: image.ID, URL: image.URL, Caption: image.Caption}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	image.ID = m.ID
	image.CreatedAt = m.CreatedAt
	return nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*entities.GalleryImage, error) {
	var ms []models.GalleryImage
	if err := GetDB(ctx, r.db).Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.GalleryImage, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.GalleryImage{
			ID:        ms[i].ID,
			URL:       ms[i].URL,
			Caption:   ms[i].Caption,
			CreatedAt: ms[i].CreatedAt,
		})
	}
	return items, nil
}

func (r *GalleryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.GalleryImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
