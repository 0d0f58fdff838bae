package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/feed"
	"github.com/flourishtalents/backend/internal/helpers"
	"github.com/flourishtalents/backend/internal/models"
)

type EventRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Category      string   `json:"category" binding:"required,oneof=social networking business workshop conference entertainment"`
	Capacity      int      `json:"capacity"`
	Price         float64  `json:"price"`
	Attractions   []string `json:"attractions"`
	Features      []string `json:"features"`
	EventDate     string   `json:"event_date" binding:"required"`
	EventTime     *string  `json:"event_time"`
	IsLivestream  bool     `json:"is_livestream"`
	LivestreamURL *string  `json:"livestream_url"`
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event := models.Event{
		ID:                  uuid.New(),
		OrganizerID:         userID.(uuid.UUID),
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Category:            models.EventCategory(req.Category),
		Capacity:            req.Capacity,
		Price:               req.Price,
		Attractions:         req.Attractions,
		Features:            req.Features,
		EventDate:           req.EventDate,
		EventTime:           req.EventTime,
		IsLivestream:        req.IsLivestream,
		LivestreamURL:       req.LivestreamURL,
		IsVisibleInMyEvents: true,
		Status:              models.StatusUpcoming,
	}

	if _, err := event.StartsAt(); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event date or time format.")
		return
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Organizer").Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !event.IsPubliclyListed() {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func ListJoinTabEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	candidates, err := models.JoinTabCandidates(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	events := feed.FilterJoinTab(candidates, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

func ListMyEvents(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	events, err := models.OwnerDashboardEvents(gormDB, userID.(uuid.UUID))
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

func UpdateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, event, ok := fetchOwnedEvent(c)
	if !ok {
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.Category = models.EventCategory(req.Category)
	event.Capacity = req.Capacity
	event.Price = req.Price
	event.Attractions = req.Attractions
	event.Features = req.Features
	event.EventDate = req.EventDate
	event.EventTime = req.EventTime
	event.IsLivestream = req.IsLivestream
	event.LivestreamURL = req.LivestreamURL

	if _, err := event.StartsAt(); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event date or time format.")
		return
	}

	if err := gormDB.Save(event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

// PublishEvent makes the event public: both visibility flags go true and
// published_at is stamped on the first publish only. Later hide/restore
// cycles never clear it.
func PublishEvent(c *gin.Context) {
	gormDB, event, ok := fetchOwnedEvent(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{
		"is_published":            true,
		"is_visible_in_join_tab":  true,
		"is_visible_in_my_events": true,
	}
	if event.PublishedAt == nil {
		updates["published_at"] = time.Now()
	}

	if err := gormDB.Model(event).Updates(updates).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to publish event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event published successfully.",
		"event":   event,
	})
}

// HideFromJoinTab pulls the event out of the public listing without
// touching the my-events axis or the underlying record.
func HideFromJoinTab(c *gin.Context) {
	gormDB, event, ok := fetchOwnedEvent(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{
		"is_visible_in_join_tab":   false,
		"deleted_from_join_tab_at": time.Now(),
	}

	if err := gormDB.Model(event).Updates(updates).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hide event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event hidden from the join tab.",
	})
}

func RestoreToJoinTab(c *gin.Context) {
	gormDB, event, ok := fetchOwnedEvent(c)
	if !ok {
		return
	}

	if !event.IsPublished {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event must be published before it can appear in the join tab.")
		return
	}

	if err := gormDB.Model(event).Update("is_visible_in_join_tab", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to restore event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event restored to the join tab.",
	})
}

// RemoveFromMyEvents soft-deletes the event from the organizer's
// dashboard. The join-tab axis is left alone; there is no hard delete.
func RemoveFromMyEvents(c *gin.Context) {
	gormDB, event, ok := fetchOwnedEvent(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{
		"is_visible_in_my_events":   false,
		"deleted_from_my_events_at": time.Now(),
	}

	if err := gormDB.Model(event).Updates(updates).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to remove event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event removed from my events.",
	})
}

func RestoreToMyEvents(c *gin.Context) {
	gormDB, event, ok := fetchOwnedEvent(c)
	if !ok {
		return
	}

	if err := gormDB.Model(event).Update("is_visible_in_my_events", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to restore event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event restored to my events.",
	})
}

func CancelEvent(c *gin.Context) {
	gormDB, event, ok := fetchOwnedEvent(c)
	if !ok {
		return
	}

	if err := gormDB.Model(event).Update("status", models.StatusCancelled).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event cancelled.",
	})
}

// fetchOwnedEvent loads the event from the :id param and verifies the
// caller organizes it. Responds with the appropriate error itself when
// the lookup fails.
func fetchOwnedEvent(c *gin.Context) (*gorm.DB, *models.Event, bool) {
	eventID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return nil, nil, false
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, nil, false
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ? AND organizer_id = ?", eventID, userID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to modify it.")
			return nil, nil, false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return nil, nil, false
	}

	return gormDB, &event, true
}
