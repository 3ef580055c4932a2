package repositories

import (
	"context"

	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
)

type NewsRepository interface {
	Create(ctx context.Context, article *entities.NewsArticle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.NewsArticle, error)
	List(ctx context.Context) ([]*entities.NewsArticle, error)
	Update(ctx context.Context, article *entities.NewsArticle) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
