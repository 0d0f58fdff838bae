package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flourishtalents/backend/internal/models"
)

func timedEvent(status models.EventStatus) models.Event {
	clock := "18:00"
	return models.Event{
		EventDate: "2025-06-01",
		EventTime: &clock,
		Status:    status,
	}
}

func TestNextStatusTimed(t *testing.T) {
	e := timedEvent(models.StatusUpcoming)

	next, changed := NextStatus(e, time.Date(2025, 6, 1, 17, 59, 0, 0, time.UTC))
	assert.Equal(t, models.StatusUpcoming, next)
	assert.False(t, changed)

	next, changed = NextStatus(e, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, models.StatusOngoing, next)
	assert.True(t, changed)

	next, changed = NextStatus(e, time.Date(2025, 6, 1, 19, 59, 0, 0, time.UTC))
	assert.Equal(t, models.StatusOngoing, next)
	assert.True(t, changed)

	next, changed = NextStatus(e, time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, models.StatusCompleted, next)
	assert.True(t, changed)
}

func TestNextStatusAllDay(t *testing.T) {
	e := models.Event{EventDate: "2025-06-01", Status: models.StatusUpcoming}

	next, _ := NextStatus(e, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, models.StatusOngoing, next)

	next, _ = NextStatus(e, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, models.StatusCompleted, next)
}

func TestNextStatusTerminalStates(t *testing.T) {
	cancelled := timedEvent(models.StatusCancelled)
	next, changed := NextStatus(cancelled, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, models.StatusCancelled, next)
	assert.False(t, changed)

	completed := timedEvent(models.StatusCompleted)
	next, changed = NextStatus(completed, time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, models.StatusCompleted, next)
	assert.False(t, changed)
}

func TestNextStatusMalformedSchedule(t *testing.T) {
	e := models.Event{EventDate: "soon", Status: models.StatusUpcoming}

	next, changed := NextStatus(e, time.Now())
	assert.Equal(t, models.StatusUpcoming, next)
	assert.False(t, changed)
}
