package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PastEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Date        string    `gorm:"type:varchar(10);not null;index"`
	Description string    `gorm:"type:text;not null"`
	Images      []string  `gorm:"serializer:json;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (m *PastEvent) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}

type UpcomingEvent struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"type:varchar(200);not null"`
	Date             string    `gorm:"type:varchar(10);not null;index"`
	Time             string    `gorm:"type:varchar(60);not null"`
	Venue            string    `gorm:"type:varchar(200);not null"`
	Description      string    `gorm:"type:text;not null"`
	RegistrationOpen bool      `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (m *UpcomingEvent) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
