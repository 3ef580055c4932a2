package models

import (
	"github.com/google/uuid"
	"interact-club.backend/pkg/utils"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = utils.GenerateUUIDv7()
	}
}

// All returns every model managed by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&BoardMember{},
		&PastEvent{},
		&UpcomingEvent{},
		&NewsArticle{},
		&GalleryImage{},
		&SiteSettings{},
		&ContactInfo{},
		&ContactSubmission{},
	}
}
