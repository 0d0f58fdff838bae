package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventMemory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PhotoPath string    `json:"photo_path"`
	Caption   string    `json:"caption"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (memory *EventMemory) BeforeCreate(tx *gorm.DB) (err error) {
	if memory.ID == uuid.Nil {
		memory.ID = uuid.New()
	}
	return
}

type EventComment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User    *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Body    string    `gorm:"not null" json:"body"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (comment *EventComment) BeforeCreate(tx *gorm.DB) (err error) {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return
}
