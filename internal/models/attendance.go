package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance records a member joining an event. One row per member per
// event; CheckedIn flips once when the organizer scans the member's QR.
type Attendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_event_user" json:"event_id"`
	Event     *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_event_user" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CheckedIn bool      `gorm:"not null;default:false" json:"checked_in"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (attendance *Attendance) BeforeCreate(tx *gorm.DB) (err error) {
	if attendance.ID == uuid.Nil {
		attendance.ID = uuid.New()
	}
	return
}
