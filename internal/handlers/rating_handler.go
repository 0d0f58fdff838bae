package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/helpers"
	"github.com/flourishtalents/backend/internal/models"
)

type RatingRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func RateProvider(c *gin.Context) {
	providerID := c.Param("id")

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Score must be between 1 and 5.")
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

	var provider models.ServiceProvider
	if err := gormDB.Where("id = ?", providerID).First(&provider).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Provider not found.")
		return
	}

	if provider.UserID == userID {
		helpers.RespondWithError(c, http.StatusBadRequest, "You cannot rate your own profile.")
		return
	}

	rating := models.Rating{
		ID:         uuid.New(),
		ProviderID: provider.ID,
		UserID:     userID.(uuid.UUID),
		Score:      req.Score,
		Comment:    req.Comment,
	}

	if err := gormDB.Create(&rating).Error; err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "You have already rated this provider.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Rating submitted successfully.",
		"rating_id": rating.ID,
	})
}
