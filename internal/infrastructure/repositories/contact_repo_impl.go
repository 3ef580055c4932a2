package repositories

import (
	"context"

	"gorm.io/gorm"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/infrastructure/models"
)

type ContactSubmissionRepository struct {
	db *gorm.DB
}

func NewContactSubmissionRepository(db *gorm.DB) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{db: db}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, s *entities.ContactSubmission) error {
	if s.Status == "" {
		s.Status = entities.ContactStatusNew
	}
	m := &models.ContactSubmission{
		ID:      s.ID,
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
		Status:  string(s.Status),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	return nil
}

func (r *ContactSubmissionRepository) List(ctx context.Context) ([]*entities.ContactSubmission, error) {
	var ms []models.ContactSubmission
	if err := GetDB(ctx, r.db).Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.ContactSubmission, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.ContactSubmission{
			ID:        ms[i].ID,
			Name:      ms[i].Name,
			Email:     ms[i].Email,
			Subject:   ms[i].Subject,
			Message:   ms[i].Message,
			Status:    entities.ContactStatus(ms[i].Status),
			CreatedAt: ms[i].CreatedAt,
		})
	}
	return items, nil
}
