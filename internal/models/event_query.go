package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinTabCandidates returns events whose stored flags allow them in the
// public join tab, soonest first. The temporal grace-window filter is
// applied on top of this by the feed package; aging out of the feed is a
// presentation decision and never touches these rows.
func JoinTabCandidates(db *gorm.DB) ([]Event, error) {
	var events []Event
	err := db.
		Where("is_published = ? AND is_visible_in_join_tab = ?", true, true).
		Order("event_date, created_at DESC").
		Find(&events).Error
	return events, err
}

// OwnerDashboardEvents returns the organizer's my-events listing,
// excluding soft-deleted entries.
func OwnerDashboardEvents(db *gorm.DB, organizerID uuid.UUID) ([]Event, error) {
	var events []Event
	err := db.
		Where("organizer_id = ? AND is_visible_in_my_events = ?", organizerID, true).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}
