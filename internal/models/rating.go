package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Rating struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ProviderID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_provider_user" json:"provider_id"`
	Provider   *ServiceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_provider_user" json:"user_id"`
	Score      int              `gorm:"not null" json:"score"`
	Comment    string           `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (rating *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	return
}
