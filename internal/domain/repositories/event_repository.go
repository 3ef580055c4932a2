package repositories

import (
	"context"

	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
)

type PastEventRepository interface {
	Create(ctx context.Context, event *entities.PastEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PastEvent, error)
	List(ctx context.Context) ([]*entities.PastEvent, error)
	Update(ctx context.Context, event *entities.PastEvent) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type UpcomingEventRepository interface {
	Create(ctx context.Context, event *entities.UpcomingEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.UpcomingEvent, error)
	List(ctx context.Context) ([]*entities.UpcomingEvent, error)
	Update(ctx context.Context, event *entities.UpcomingEvent) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// CloseRegistrationBefore flips registration_open off for events dated
	// strictly before date (YYYY-MM-DD) and returns how many changed.
	CloseRegistrationBefore(ctx context.Context, date string) (int64, error)
}
