package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingPaid      BookingStatus = "paid"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// ServiceBooking records a member hiring a service provider for an event.
type ServiceBooking struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	EventID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"event_id"`
	Event      *Event           `gorm:"foreignKey:EventID" json:"event,omitempty"`
	ProviderID uuid.UUID        `gorm:"type:uuid;not null;index" json:"provider_id"`
	Provider   *ServiceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Amount     float64       `gorm:"not null" json:"amount"`
	Status     BookingStatus `gorm:"not null;default:'pending'" json:"status"`
	Notes      string        `json:"notes"`
	InvoiceURL *string       `json:"invoice_url,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (booking *ServiceBooking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return
}
