package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsArticle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Date      string    `gorm:"type:varchar(10);not null;index"`
	Excerpt   string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	Image     string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (NewsArticle) TableName() string {
	return "news"
}

func (m *NewsArticle) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
