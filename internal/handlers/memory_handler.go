package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/helpers"
	"github.com/flourishtalents/backend/internal/models"
)

func CreateMemory(c *gin.Context) {
	eventID := c.Param("id")
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

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	memory := models.EventMemory{
		ID:      uuid.New(),
		EventID: event.ID,
		UserID:  userID.(uuid.UUID),
		Caption: c.PostForm("caption"),
	}

	photoFile, err := c.FormFile("photo")
	if err == nil {
		photoPath, err := helpers.UploadFile(c, photoFile, "event_memories")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		memory.PhotoPath = photoPath
	}

	if err := gormDB.Create(&memory).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create memory.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Memory created successfully.",
		"memory_id": memory.ID,
	})
}

func ListMemories(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var memories []models.EventMemory
	err := gormDB.Preload("User").Where("event_id = ?", eventID).Order("created_at DESC").Find(&memories).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving memories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"memories": memories,
		"total":    len(memories),
	})
}

func DeleteMemory(c *gin.Context) {
	memoryID := c.Param("id")
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

	result := gormDB.Where("id = ? AND user_id = ?", memoryID, userID).Delete(&models.EventMemory{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete memory.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Memory not found or you don't have permission to delete it.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Memory deleted successfully.",
	})
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func CreateComment(c *gin.Context) {
	eventID := c.Param("id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Comment body is required.")
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

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	comment := models.EventComment{
		ID:      uuid.New(),
		EventID: event.ID,
		UserID:  userID.(uuid.UUID),
		Body:    req.Body,
	}

	if err := gormDB.Create(&comment).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create comment.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Comment created successfully.",
		"comment_id": comment.ID,
	})
}

func ListComments(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var comments []models.EventComment
	err := gormDB.Preload("User").Where("event_id = ?", eventID).Order("created_at").Find(&comments).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving comments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"total":    len(comments),
	})
}

func DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
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

	result := gormDB.Where("id = ? AND user_id = ?", commentID, userID).Delete(&models.EventComment{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete comment.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Comment not found or you don't have permission to delete it.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment deleted successfully.",
	})
}
