package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventCategory string

const (
	CategorySocial        EventCategory = "social"
	CategoryNetworking    EventCategory = "networking"
	CategoryBusiness      EventCategory = "business"
	CategoryWorkshop      EventCategory = "workshop"
	CategoryConference    EventCategory = "conference"
	CategoryEntertainment EventCategory = "entertainment"
)

type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// StringList maps an ordered list of strings to a jsonb column.
type StringList []string

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ErrInvalidSchedule is returned when an event's stored date or time
// string cannot be parsed.
var ErrInvalidSchedule = errors.New("event has an invalid date or time")

type Event struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	OrganizerID uuid.UUID     `gorm:"type:uuid;not null;index" json:"organizer_id"`
	Organizer   *User         `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Category    EventCategory `gorm:"not null" json:"category"`
	Capacity    int           `json:"capacity"`
	Price       float64       `json:"price"`
	Attractions StringList    `gorm:"type:jsonb" json:"attractions"`
	Features    StringList    `gorm:"type:jsonb" json:"features"`

	EventDate string  `gorm:"not null" json:"event_date"` // YYYY-MM-DD
	EventTime *string `json:"event_time,omitempty"`       // HH:MM; nil or empty means all-day

	IsLivestream  bool    `gorm:"not null;default:false" json:"is_livestream"`
	LivestreamURL *string `json:"livestream_url,omitempty"`

	// Lifecycle flags. The two visibility axes are independent: hiding
	// from the join tab never touches the my-events axis and vice versa.
	IsPublished         bool        `gorm:"not null;default:false" json:"is_published"`
	IsVisibleInJoinTab  bool        `gorm:"not null;default:false" json:"is_visible_in_join_tab"`
	IsVisibleInMyEvents bool        `gorm:"not null;default:true" json:"is_visible_in_my_events"`
	Status              EventStatus `gorm:"not null;default:'upcoming'" json:"status"`

	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	PublishedAt           *time.Time `json:"published_at,omitempty"`
	DeletedFromJoinTabAt  *time.Time `json:"deleted_from_join_tab_at,omitempty"`
	DeletedFromMyEventsAt *time.Time `json:"deleted_from_my_events_at,omitempty"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

// IsPubliclyListed reports whether the stored flags allow the event in
// public listings. Join-tab visibility requires publication; checking
// both here keeps that invariant in one place.
func (e Event) IsPubliclyListed() bool {
	return e.IsPublished && e.IsVisibleInJoinTab
}

// IsInOwnerDashboard reports whether the event appears in the
// organizer's own management listing.
func (e Event) IsInOwnerDashboard() bool {
	return e.IsVisibleInMyEvents
}

// IsAllDay reports whether the event has no time-of-day. An empty
// event_time is treated the same as an absent one.
func (e Event) IsAllDay() bool {
	return e.EventTime == nil || *e.EventTime == ""
}

// StartsAt parses the stored schedule into a UTC instant. All-day events
// start at midnight of their date. Returns ErrInvalidSchedule (wrapped)
// when the stored strings are malformed.
func (e Event) StartsAt() (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", e.EventDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidSchedule, e.EventDate)
	}
	if e.IsAllDay() {
		return day, nil
	}

	clock, err := time.Parse("15:04", *e.EventTime)
	if err != nil {
		clock, err = time.Parse("15:04:05", *e.EventTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: time %q", ErrInvalidSchedule, *e.EventTime)
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC), nil
}
