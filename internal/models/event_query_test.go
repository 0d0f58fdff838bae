package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestJoinTabCandidates(t *testing.T) {
	gormDB, mock := newMockDB(t)

	firstID := uuid.New()
	secondID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "title", "event_date", "is_published", "is_visible_in_join_tab"}).
		AddRow(firstID.String(), "Morning Yoga", "2025-06-01", true, true).
		AddRow(secondID.String(), "Networking Night", "2025-06-03", true, true)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE is_published = \$1 AND is_visible_in_join_tab = \$2 ORDER BY event_date, created_at DESC`).
		WithArgs(true, true).
		WillReturnRows(rows)

	events, err := JoinTabCandidates(gormDB)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, firstID, events[0].ID)
	assert.Equal(t, secondID, events[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerDashboardEvents(t *testing.T) {
	gormDB, mock := newMockDB(t)

	organizerID := uuid.New()
	eventID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "organizer_id", "title", "is_visible_in_my_events"}).
		AddRow(eventID.String(), organizerID.String(), "Draft Workshop", true)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE organizer_id = \$1 AND is_visible_in_my_events = \$2 ORDER BY created_at DESC`).
		WithArgs(organizerID, true).
		WillReturnRows(rows)

	events, err := OwnerDashboardEvents(gormDB, organizerID)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)
	assert.Equal(t, "Draft Workshop", events[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
