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

type PastEventRepository struct {
	db *gorm.DB
}

func NewPastEventRepository(db *gorm.DB) *PastEventRepository {
	return &PastEventRepository{db: db}
}

func (r *PastEventRepository) Create(ctx context.Context, event *entities.PastEvent) error {
	m := r.toModel(event)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	event.ID = m.ID
	event.Images = m.Images
	event.CreatedAt = m.CreatedAt
	event.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PastEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PastEvent, error) {
	var m models.PastEvent
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *PastEventRepository) List(ctx context.Context) ([]*entities.PastEvent, error) {
	var ms []models.PastEvent
	if err := GetDB(ctx, r.db).Order("date DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.PastEvent, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *PastEventRepository) Update(ctx context.Context, event *entities.PastEvent) error {
	now := time.Now()
	// Select forces the serialized images column through even when empty.
	result := GetDB(ctx, r.db).
		Model(&models.PastEvent{}).
		Where("id = ?", event.ID).
		Select("title", "date", "description", "images", "updated_at").
		Updates(&models.PastEvent{
			Title:       event.Title,
			Date:        event.Date,
			Description: event.Description,
			Images:      nonNilImages(event.Images),
			UpdatedAt:   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	event.UpdatedAt = now
	return nil
}

func (r *PastEventRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.PastEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PastEventRepository) toEntity(m *models.PastEvent) *entities.PastEvent {
	return &entities.PastEvent{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Description: m.Description,
		Images:      nonNilImages(m.Images),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *PastEventRepository) toModel(e *entities.PastEvent) *models.PastEvent {
	return &models.PastEvent{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Description: e.Description,
		Images:      nonNilImages(e.Images),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func nonNilImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

type UpcomingEventRepository struct {
	db *gorm.DB
}

func NewUpcomingEventRepository(db *gorm.DB) *UpcomingEventRepository {
	return &UpcomingEventRepository{db: db}
}

func (r *UpcomingEventRepository) Create(ctx context.Context, event *entities.UpcomingEvent) error {
	m := r.toModel(event)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	event.ID = m.ID
	event.CreatedAt = m.CreatedAt
	event.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *UpcomingEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UpcomingEvent, error) {
	var m models.UpcomingEvent
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *UpcomingEventRepository) List(ctx context.Context) ([]*entities.UpcomingEvent, error) {
	var ms []models.UpcomingEvent
	if err := GetDB(ctx, r.db).Order("date ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.UpcomingEvent, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *UpcomingEventRepository) Update(ctx context.Context, event *entities.UpcomingEvent) error {
	now := time.Now()
	updates := map[string]interface{}{
		"title":             event.Title,
		"date":              event.Date,
		"time":              event.Time,
		"venue":             event.Venue,
		"description":       event.Description,
		"registration_open": event.RegistrationOpen,
		"updated_at":        now,
	}
	result := GetDB(ctx, r.db).
		Model(&models.UpcomingEvent{}).
		Where("id = ?", event.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	event.UpdatedAt = now
	return nil
}

func (r *UpcomingEventRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.UpcomingEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UpcomingEventRepository) CloseRegistrationBefore(ctx context.Context, date string) (int64, error) {
	result := GetDB(ctx, r.db).
		Model(&models.UpcomingEvent{}).
		Where("date < ? AND registration_open = ?", date, true).
		Updates(map[string]interface{}{
			"registration_open": false,
			"updated_at":        time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *UpcomingEventRepository) toEntity(m *models.UpcomingEvent) *entities.UpcomingEvent {
	return &entities.UpcomingEvent{
		ID:               m.ID,
		Title:            m.Title,
		Date:             m.Date,
		Time:             m.Time,
		Venue:            m.Venue,
		Description:      m.Description,
		RegistrationOpen: m.RegistrationOpen,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *UpcomingEventRepository) toModel(e *entities.UpcomingEvent) *models.UpcomingEvent {
	return &models.UpcomingEvent{
		ID:               e.ID,
		Title:            e.Title,
		Date:             e.Date,
		Time:             e.Time,
		Venue:            e.Venue,
		Description:      e.Description,
		RegistrationOpen: e.RegistrationOpen,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
