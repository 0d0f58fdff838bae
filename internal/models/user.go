package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	PhoneNumber string    `json:"phone_number"`
	RoleID      uuid.UUID `json:"role_id"`
	Role        Role      `json:"role"`

	Events   []Event          `gorm:"foreignKey:OrganizerID" json:"events,omitempty"`
	Bookings []ServiceBooking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}
