package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"interact-club.backend/internal/domain/entities"
	domainerrors "interact-club.backend/internal/domain/errors"
	"interact-club.backend/internal/infrastructure/models"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, article *entities.NewsArticle) error {
	m := &models.NewsArticle{
		ID:      article.ID,
		Title:   article.Title,
		Date:    article.Date,
		Excerpt: article.Excerpt,
		Content: article.Content,
		Image:   article.Image,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	article.ID = m.ID
	article.CreatedAt = m.CreatedAt
	article.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.NewsArticle, error) {
	var m models.NewsArticle
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toNewsEntity(&m), nil
}

func (r *NewsRepository) List(ctx context.Context) ([]*entities.NewsArticle, error) {
	var ms []models.NewsArticle
	if err := GetDB(ctx, r.db).Order("date DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.NewsArticle, 0, len(ms))
	for i := range ms {
		items = append(items, toNewsEntity(&ms[i]))
	}
	return items, nil
}

func (r *NewsRepository) Update(ctx context.Context, article *entities.NewsArticle) error {
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.NewsArticle{}).
		Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"title":      article.Title,
			"date":       article.Date,
			"excerpt":    article.Excerpt,
			"content":    article.Content,
			"image":      article.Image,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	article.UpdatedAt = now
	return nil
}

func (r *NewsRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.NewsArticle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toNewsEntity(m *models.NewsArticle) *entities.NewsArticle {
	return &entities.NewsArticle{
		ID:        m.ID,
		Title:     m.Title,
		Date:      m.Date,
		Excerpt:   m.Excerpt,
		Content:   m.Content,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
