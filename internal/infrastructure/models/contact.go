package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactSubmission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new'"`
	CreatedAt time.Time `gorm:"index"`
}

func (m *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
