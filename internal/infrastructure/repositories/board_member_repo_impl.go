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

type BoardMemberRepository struct {
	db *gorm.DB
}

func NewBoardMemberRepository(db *gorm.DB) *BoardMemberRepository {
	return &BoardMemberRepository{db: db}
}

func (r *BoardMemberRepository) Create(ctx context.Context, member *entities.BoardMember) error {
	m := r.toModel(member)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BoardMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BoardMember, error) {
	var m models.BoardMember
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *BoardMemberRepository) List(ctx context.Context) ([]*entities.BoardMember, error) {
	var ms []models.BoardMember
	if err := GetDB(ctx, r.db).
		Order("display_order ASC, created_at ASC, id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.BoardMember, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *BoardMemberRepository) Update(ctx context.Context, member *entities.BoardMember) error {
	now := time.Now()
	updates := map[string]interface{}{
		"name":          member.Name,
		"position":      member.Position,
		"email":         member.Email,
		"image":         member.Image,
		"display_order": member.Order,
		"updated_at":    now,
	}

	result := GetDB(ctx, r.db).
		Model(&models.BoardMember{}).
		Where("id = ?", member.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	member.UpdatedAt = now
	return nil
}

func (r *BoardMemberRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.BoardMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BoardMemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.BoardMember{}).Count(&n).Error
	return n, err
}

func (r *BoardMemberRepository) toEntity(m *models.BoardMember) *entities.BoardMember {
	return &entities.BoardMember{
		ID:        m.ID,
		Name:      m.Name,
		Position:  m.Position,
		Email:     m.Email,
		Image:     m.Image,
		Order:     m.DisplayOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *BoardMemberRepository) toModel(e *entities.BoardMember) *models.BoardMember {
	return &models.BoardMember{
		ID:           e.ID,
		Name:         e.Name,
		Position:     e.Position,
		Email:        e.Email,
		Image:        e.Image,
		DisplayOrder: e.Order,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
