// Package scheduler keeps derived event state fresh in the background.
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/calendar"
	"github.com/flourishtalents/backend/internal/models"
)

// NextStatus derives the lifecycle status an event should carry at the
// given instant. Cancelled and completed are terminal; the function
// reports ok=false for those and for events with an unparseable
// schedule.
func NextStatus(e models.Event, now time.Time) (models.EventStatus, bool) {
	if e.Status == models.StatusCancelled || e.Status == models.StatusCompleted {
		return e.Status, false
	}

	start, err := e.StartsAt()
	if err != nil {
		return e.Status, false
	}

	var end time.Time
	if e.IsAllDay() {
		end = start.Add(24 * time.Hour)
	} else {
		end = start.Add(calendar.DefaultDuration)
	}

	switch {
	case now.Before(start):
		return models.StatusUpcoming, models.StatusUpcoming != e.Status
	case now.Before(end):
		return models.StatusOngoing, models.StatusOngoing != e.Status
	default:
		return models.StatusCompleted, models.StatusCompleted != e.Status
	}
}

// RefreshStatuses walks all non-terminal events and persists any status
// transitions due at now. Returns the number of rows updated.
func RefreshStatuses(db *gorm.DB, now time.Time) (int, error) {
	var events []models.Event
	err := db.Where("status IN ?", []models.EventStatus{models.StatusUpcoming, models.StatusOngoing}).
		Find(&events).Error
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, event := range events {
		next, changed := NextStatus(event, now)
		if !changed {
			continue
		}
		if err := db.Model(&models.Event{}).Where("id = ?", event.ID).
			Update("status", next).Error; err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// Start launches the periodic status refresher. Stop the returned cron
// on shutdown.
func Start(db *gorm.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every 10m", func() {
		updated, err := RefreshStatuses(db, time.Now())
		if err != nil {
			log.Printf("status refresh failed: %v", err)
			return
		}
		if updated > 0 {
			log.Printf("status refresh updated %d events", updated)
		}
	})
	if err != nil {
		log.Printf("failed to schedule status refresh: %v", err)
		return c
	}
	c.Start()
	return c
}
