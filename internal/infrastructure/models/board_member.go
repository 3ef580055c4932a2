package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardMember struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Position     string    `gorm:"type:varchar(120);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Image        string    `gorm:"type:text;not null"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (m *BoardMember) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
