package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceProvider struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User         *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ServiceType  string     `gorm:"not null" json:"service_type"`
	Headline     string     `json:"headline"`
	Description  string     `json:"description"`
	RatePerEvent float64    `json:"rate_per_event"`
	Portfolio    StringList `gorm:"type:jsonb" json:"portfolio"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (provider *ServiceProvider) BeforeCreate(tx *gorm.DB) (err error) {
	if provider.ID == uuid.Nil {
		provider.ID = uuid.New()
	}
	return
}
