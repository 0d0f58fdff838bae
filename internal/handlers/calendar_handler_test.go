package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/middleware"
)

func newCalendarRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(gormDB))
	r.GET("/v1/events/:id/calendar.ics", DownloadEventCalendar)
	r.GET("/v1/events/:id/calendar", EventCalendarLinks)
	return r, mock
}

func eventRows(id, organizerID uuid.UUID, eventDate string, eventTime interface{}, published bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "organizer_id", "title", "description", "location",
		"event_date", "event_time", "is_published", "is_visible_in_join_tab", "status",
	}).AddRow(
		id.String(), organizerID.String(), "Networking Night", "Bring cards", "The Loft",
		eventDate, eventTime, published, published, "upcoming",
	)
}

func TestDownloadEventCalendar(t *testing.T) {
	r, mock := newCalendarRouter(t)

	eventID := uuid.New()
	organizerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = \$1`).
		WillReturnRows(eventRows(eventID, organizerID, "2025-06-01", "18:30", true))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(organizerID.String(), "Alicia Reyes", "alicia@example.com"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/events/"+eventID.String()+"/calendar.ics", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar;charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Networking_Night.ics"`, w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR\r\n")
	assert.Contains(t, body, "SUMMARY:Networking Night\r\n")
	assert.Contains(t, body, "DTSTART:20250601T183000Z\r\n")
	assert.Contains(t, body, "ORGANIZER;CN=Alicia Reyes:mailto:alicia@example.com\r\n")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadEventCalendarUnlistedIs404(t *testing.T) {
	r, mock := newCalendarRouter(t)

	eventID := uuid.New()
	organizerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = \$1`).
		WillReturnRows(eventRows(eventID, organizerID, "2025-06-01", "18:30", false))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(organizerID.String(), "Alicia Reyes", "alicia@example.com"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/events/"+eventID.String()+"/calendar.ics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadEventCalendarMalformedScheduleIs422(t *testing.T) {
	r, mock := newCalendarRouter(t)

	eventID := uuid.New()
	organizerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = \$1`).
		WillReturnRows(eventRows(eventID, organizerID, "June 1st", "18:30", true))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(organizerID.String(), "Alicia Reyes", "alicia@example.com"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/events/"+eventID.String()+"/calendar.ics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestEventCalendarLinks(t *testing.T) {
	r, mock := newCalendarRouter(t)

	eventID := uuid.New()
	organizerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = \$1`).
		WillReturnRows(eventRows(eventID, organizerID, "2025-06-01", nil, true))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(organizerID.String(), "Alicia Reyes", "alicia@example.com"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/events/"+eventID.String()+"/calendar", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "calendar.google.com")
	assert.Contains(t, body, "data:text/calendar")
	assert.Contains(t, body, "Networking_Night.ics")
	assert.Contains(t, body, "Organized by Alicia Reyes")
}
