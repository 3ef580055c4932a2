package models

import "time"

// SingletonID is the fixed primary key of single-row tables.
const SingletonID uint = 1

type SiteSettings struct {
	ID            uint `gorm:"primaryKey"`
	ActiveMembers int  `gorm:"not null"`
	TotalEvents   int  `gorm:"not null"`
	LivesImpacted int  `gorm:"not null"`
	AwardsWon     int  `gorm:"not null"`
	UpdatedAt     time.Time
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

type ContactInfo struct {
	ID          uint   `gorm:"primaryKey"`
	Address     string `gorm:"type:text;not null"`
	Email       string `gorm:"type:varchar(255);not null"`
	Phone       string `gorm:"type:varchar(40)"`
	OfficeHours string `gorm:"type:varchar(200);not null"`
	UpdatedAt   time.Time
}

func (ContactInfo) TableName() string {
	return "contact_info"
}
