package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
	domainerrors "interact-club.backend/internal/domain/errors"
)

// SiteSettings holds the headline statistics shown on the home page.
type SiteSettings struct {
	ActiveMembers int       `json:"active_members"`
	TotalEvents   int       `json:"total_events"`
	LivesImpacted int       `json:"lives_impacted"`
	AwardsWon     int       `json:"awards_won"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultSiteSettings is served until an administrator saves settings.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ActiveMembers: 50,
		TotalEvents:   20,
		LivesImpacted: 1000,
		AwardsWon:     5,
	}
}

type UpdateSiteSettingsInput struct {
	ActiveMembers null.Int `json:"active_members"`
	TotalEvents   null.Int `json:"total_events"`
	LivesImpacted null.Int `json:"lives_impacted"`
	AwardsWon     null.Int `json:"awards_won"`
}

func (in *UpdateSiteSettingsInput) Validate() error {
	for _, f := range []struct {
		name  string
		value null.Int
	}{
		{"active_members", in.ActiveMembers},
		{"total_events", in.TotalEvents},
		{"lives_impacted", in.LivesImpacted},
		{"awards_won", in.AwardsWon},
	} {
		if f.value.Valid && f.value.Int < 0 {
			return domainerrors.InvalidInput(f.name + " must not be negative")
		}
	}
	return nil
}

func (in *UpdateSiteSettingsInput) Apply(s *SiteSettings) {
	if in.ActiveMembers.Valid {
		s.ActiveMembers = in.ActiveMembers.Int
	}
	if in.TotalEvents.Valid {
		s.TotalEvents = in.TotalEvents.Int
	}
	if in.LivesImpacted.Valid {
		s.LivesImpacted = in.LivesImpacted.Int
	}
	if in.AwardsWon.Valid {
		s.AwardsWon = in.AwardsWon.Int
	}
}
