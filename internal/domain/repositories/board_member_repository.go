package repositories

import (
	"context"

	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
)

type BoardMemberRepository interface {
	Create(ctx context.Context, member *entities.BoardMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BoardMember, error)
	List(ctx context.Context) ([]*entities.BoardMember, error)
	Update(ctx context.Context, member *entities.BoardMember) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
