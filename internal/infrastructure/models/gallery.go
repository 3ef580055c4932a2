package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	URL       string         `gorm:"type:text;not null"`
	Caption   string         `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time      `gorm:"index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (GalleryImage) TableName() string {
	return "gallery"
}

func (m *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
