package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "Networking_Night_2025_.ics", Filename("Networking Night 2025!"))
	assert.Equal(t, "plain.ics", Filename("plain"))
}

func TestGoogleCalendarURL(t *testing.T) {
	v, err := FromEvent(timedEvent(), "Alicia Reyes", "alicia@example.com")
	require.NoError(t, err)

	raw := GoogleCalendarURL(v)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "calendar.google.com", parsed.Host)
	q := parsed.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Networking Night; Downtown", q.Get("text"))
	assert.Equal(t, "20250601T183000Z/20250601T203000Z", q.Get("dates"))
	assert.Equal(t, "The Loft, 5th Ave", q.Get("location"))
	assert.Contains(t, q.Get("details"), "Organized by Alicia Reyes")
}

func TestGoogleCalendarURLAllDayUsesDateOnly(t *testing.T) {
	e := timedEvent()
	e.EventTime = nil

	v, err := FromEvent(e, "", "")
	require.NoError(t, err)

	parsed, err := url.Parse(GoogleCalendarURL(v))
	require.NoError(t, err)
	assert.Equal(t, "20250601/20250602", parsed.Query().Get("dates"))
}

func TestAppleCalendarDataURI(t *testing.T) {
	v, err := FromEvent(timedEvent(), "", "")
	require.NoError(t, err)

	uri := AppleCalendarDataURI(v.Render(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)))

	assert.True(t, strings.HasPrefix(uri, "data:text/calendar;charset=utf-8,"))
	decoded, err := url.PathUnescape(strings.TrimPrefix(uri, "data:text/calendar;charset=utf-8,"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(decoded, "BEGIN:VCALENDAR"))
}

func TestSummaryText(t *testing.T) {
	text, err := SummaryText(timedEvent(), "Alicia Reyes")
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Networking Night; Downtown", lines[0])
	assert.Equal(t, "Sunday, June 1, 2025", lines[1])
	assert.Equal(t, "6:30 PM", lines[2])
	assert.Equal(t, "The Loft, 5th Ave", lines[3])
	assert.Equal(t, "Organized by Alicia Reyes", lines[4])
	assert.Equal(t, "Drinks, snacks", lines[5])
	assert.Equal(t, "and introductions", lines[6])
}

func TestSummaryTextDefaults(t *testing.T) {
	e := timedEvent()
	e.EventTime = nil
	e.Location = ""
	e.Description = ""

	text, err := SummaryText(e, "")
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Sunday, June 1, 2025", lines[1])
	assert.Equal(t, "TBD", lines[2])
	assert.Equal(t, "No description", lines[3])
}
