package repositories

import (
	"context"

	"interact-club.backend/internal/domain/entities"
)

// SettingsRepository stores the singleton documents. Getters return the
// defaults when nothing has been saved yet.
type SettingsRepository interface {
	GetSiteSettings(ctx context.Context) (*entities.SiteSettings, error)
	SaveSiteSettings(ctx context.Context, settings *entities.SiteSettings) error
	GetContactInfo(ctx context.Context) (*entities.ContactInfo, error)
	SaveContactInfo(ctx context.Context, info *entities.ContactInfo) error
}
