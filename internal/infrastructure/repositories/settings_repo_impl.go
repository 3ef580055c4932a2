package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/infrastructure/models"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetSiteSettings(ctx context.Context) (*entities.SiteSettings, error) {
	var m models.SiteSettings
	if err := GetDB(ctx, r.db).First(&m, models.SingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DefaultSiteSettings(), nil
		}
		return nil, err
	}
	return &entities.SiteSettings{
		ActiveMembers: m.ActiveMembers,
		TotalEvents:   m.TotalEvents,
		LivesImpacted: m.LivesImpacted,
		AwardsWon:     m.AwardsWon,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func (r *SettingsRepository) SaveSiteSettings(ctx context.Context, s *entities.SiteSettings) error {
	m := &models.SiteSettings{
		ID:            models.SingletonID,
		ActiveMembers: s.ActiveMembers,
		TotalEvents:   s.TotalEvents,
		LivesImpacted: s.LivesImpacted,
		AwardsWon:     s.AwardsWon,
	}
	if err := GetDB(ctx, r.db).Save(m).Error; err != nil {
		return err
	}
	s.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SettingsRepository) GetContactInfo(ctx context.Context) (*entities.ContactInfo, error) {
	var m models.ContactInfo
	if err := GetDB(ctx, r.db).First(&m, models.SingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DefaultContactInfo(), nil
		}
		return nil, err
	}
	return &entities.ContactInfo{
		Address:     m.Address,
		Email:       m.Email,
		Phone:       m.Phone,
		OfficeHours: m.OfficeHours,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

func (r *SettingsRepository) SaveContactInfo(ctx context.Context, c *entities.ContactInfo) error {
	m := &models.ContactInfo{
		ID:          models.SingletonID,
		Address:     c.Address,
		Email:       c.Email,
		Phone:       c.Phone,
		OfficeHours: c.OfficeHours,
	}
	if err := GetDB(ctx, r.db).Save(m).Error; err != nil {
		return err
	}
	c.UpdatedAt = m.UpdatedAt
	return nil
}
