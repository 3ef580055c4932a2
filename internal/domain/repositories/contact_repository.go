package repositories

import (
	"context"

	"interact-club.backend/internal/domain/entities"
)

type ContactSubmissionRepository interface {
	Create(ctx context.Context, submission *entities.ContactSubmission) error
	List(ctx context.Context) ([]*entities.ContactSubmission, error)
}
