package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/calendar"
	"github.com/flourishtalents/backend/internal/helpers"
	"github.com/flourishtalents/backend/internal/models"
)

func fetchListedEvent(c *gin.Context) (models.Event, bool) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return models.Event{}, false
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Organizer").Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return models.Event{}, false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return models.Event{}, false
	}

	if !event.IsPubliclyListed() {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return models.Event{}, false
	}

	return event, true
}

func organizerContact(event models.Event) (name, email string) {
	if event.Organizer != nil {
		return event.Organizer.Name, event.Organizer.Email
	}
	return "", ""
}

func DownloadEventCalendar(c *gin.Context) {
	event, ok := fetchListedEvent(c)
	if !ok {
		return
	}

	name, email := organizerContact(event)
	vevent, err := calendar.FromEvent(event, name, email)
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnprocessableEntity, "Event has an invalid date or time.")
		return
	}

	ics := vevent.Render(time.Now())

	c.Header("Content-Disposition", `attachment; filename="`+calendar.Filename(event.Title)+`"`)
	c.Data(http.StatusOK, calendar.ContentType, []byte(ics))
}

func EventCalendarLinks(c *gin.Context) {
	event, ok := fetchListedEvent(c)
	if !ok {
		return
	}

	name, email := organizerContact(event)
	vevent, err := calendar.FromEvent(event, name, email)
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnprocessableEntity, "Event has an invalid date or time.")
		return
	}

	ics := vevent.Render(time.Now())
	summary, err := calendar.SummaryText(event, name)
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnprocessableEntity, "Event has an invalid date or time.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"google_url": calendar.GoogleCalendarURL(vevent),
		"apple_url":  calendar.AppleCalendarDataURI(ics),
		"summary":    summary,
		"filename":   calendar.Filename(event.Title),
	})
}
