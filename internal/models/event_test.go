package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPubliclyListed(t *testing.T) {
	e := Event{IsPublished: true, IsVisibleInJoinTab: true}
	assert.True(t, e.IsPubliclyListed())

	e.IsPublished = false
	assert.False(t, e.IsPubliclyListed())

	e.IsPublished = true
	e.IsVisibleInJoinTab = false
	assert.False(t, e.IsPubliclyListed())
}

func TestIsAllDay(t *testing.T) {
	assert.True(t, Event{}.IsAllDay())

	empty := ""
	assert.True(t, Event{EventTime: &empty}.IsAllDay())

	clock := "10:00"
	assert.False(t, Event{EventTime: &clock}.IsAllDay())
}

func TestStartsAt(t *testing.T) {
	clock := "18:30"
	e := Event{EventDate: "2025-06-01", EventTime: &clock}

	start, err := e.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC), start)

	withSeconds := "18:30:45"
	e.EventTime = &withSeconds
	start, err = e.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 30, 45, 0, time.UTC), start)

	e.EventTime = nil
	start, err = e.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestStartsAtMalformed(t *testing.T) {
	_, err := Event{EventDate: "01/06/2025"}.StartsAt()
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	bad := "6pm"
	_, err = Event{EventDate: "2025-06-01", EventTime: &bad}.StartsAt()
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"dj", "live band"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["dj","live band"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["dj","live band"]`)))
	assert.Equal(t, StringList{"dj", "live band"}, l)

	require.NoError(t, l.Scan(`["catering"]`))
	assert.Equal(t, StringList{"catering"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)

	assert.Error(t, l.Scan(42))
}
