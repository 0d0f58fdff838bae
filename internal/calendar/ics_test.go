package calendar

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flourishtalents/backend/internal/models"
)

func timedEvent() models.Event {
	clock := "18:30"
	return models.Event{
		ID:          uuid.MustParse("3f9d6c2a-8f1e-4b7a-9c0d-1a2b3c4d5e6f"),
		Title:       "Networking Night; Downtown",
		Description: "Drinks, snacks\nand introductions",
		Location:    "The Loft, 5th Ave",
		EventDate:   "2025-06-01",
		EventTime:   &clock,
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain text",
		"commas, semicolons; and more",
		`backslash \ then \n literal`,
		"multi\nline\ntext",
		`already escaped \, sequence`,
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Unescape(Escape(in)), "round trip of %q", in)
	}

	assert.Equal(t, `a\,b\;c\\d\ne`, Escape("a,b;c\\d\ne"))
}

func TestRenderTimedEvent(t *testing.T) {
	v, err := FromEvent(timedEvent(), "Alicia Reyes", "alicia@example.com")
	require.NoError(t, err)

	out := v.Render(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "UID:3f9d6c2a-8f1e-4b7a-9c0d-1a2b3c4d5e6f@eventapp.example.com\r\n")
	assert.Contains(t, out, "DTSTAMP:20250520T120000Z\r\n")
	assert.Contains(t, out, "DTSTART:20250601T183000Z\r\n")
	assert.Contains(t, out, "DTEND:20250601T203000Z\r\n")
	assert.Contains(t, out, `SUMMARY:Networking Night\; Downtown`+"\r\n")
	assert.Contains(t, out, `DESCRIPTION:Drinks\, snacks\nand introductions`+"\r\n")
	assert.Contains(t, out, "ORGANIZER;CN=Alicia Reyes:mailto:alicia@example.com\r\n")
}

func TestRenderAllDayEvent(t *testing.T) {
	e := timedEvent()
	e.EventTime = nil

	v, err := FromEvent(e, "", "")
	require.NoError(t, err)

	out := v.Render(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250601\r\n")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250602\r\n")
	assert.NotContains(t, out, "ORGANIZER")
}

func TestRenderOrganizerWithoutEmailKeepsColon(t *testing.T) {
	v, err := FromEvent(timedEvent(), "Alicia Reyes", "")
	require.NoError(t, err)

	out := v.Render(time.Now())
	assert.Contains(t, out, "ORGANIZER;CN=Alicia Reyes:\r\n")
}

func TestRenderParsesAsICalendar(t *testing.T) {
	v, err := FromEvent(timedEvent(), "Alicia Reyes", "alicia@example.com")
	require.NoError(t, err)

	out := v.Render(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "3f9d6c2a-8f1e-4b7a-9c0d-1a2b3c4d5e6f@eventapp.example.com", events[0].Id())

	summary := events[0].GetProperty(ics.ComponentPropertySummary)
	require.NotNil(t, summary)

	start, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC), start)
}

func TestUIDStableAcrossRenders(t *testing.T) {
	e := timedEvent()

	first, err := FromEvent(e, "A", "a@example.com")
	require.NoError(t, err)
	second, err := FromEvent(e, "A", "a@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.UID, second.UID)

	early := first.Render(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
	late := first.Render(time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC))
	assert.NotEqual(t, early, late)
	assert.Contains(t, late, "DTSTAMP:20250521T120000Z\r\n")
}

func TestFromEventMalformedSchedule(t *testing.T) {
	e := timedEvent()
	e.EventDate = "June 1st"

	_, err := FromEvent(e, "", "")
	assert.ErrorIs(t, err, models.ErrInvalidSchedule)
}
