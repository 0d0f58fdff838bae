package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/helpers"
	"github.com/flourishtalents/backend/internal/models"
)

type ProviderRequest struct {
	ServiceType  string   `json:"service_type" binding:"required"`
	Headline     string   `json:"headline"`
	Description  string   `json:"description"`
	RatePerEvent float64  `json:"rate_per_event"`
	Portfolio    []string `json:"portfolio"`
}

func CreateProvider(c *gin.Context) {
	var req ProviderRequest
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

	provider := models.ServiceProvider{
		ID:           uuid.New(),
		UserID:       userID.(uuid.UUID),
		ServiceType:  req.ServiceType,
		Headline:     req.Headline,
		Description:  req.Description,
		RatePerEvent: req.RatePerEvent,
		Portfolio:    req.Portfolio,
	}

	if err := gormDB.Create(&provider).Error; err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "You already have a provider profile.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Provider profile created successfully.",
		"provider_id": provider.ID,
	})
}

func GetProvider(c *gin.Context) {
	providerID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var provider models.ServiceProvider
	if err := gormDB.Preload("User").Where("id = ?", providerID).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Provider not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving provider.")
		return
	}

	var average float64
	var count int64
	gormDB.Model(&models.Rating{}).Where("provider_id = ?", provider.ID).Count(&count)
	if count > 0 {
		gormDB.Model(&models.Rating{}).Where("provider_id = ?", provider.ID).Select("AVG(score)").Scan(&average)
	}

	c.JSON(http.StatusOK, gin.H{
		"provider":       provider,
		"average_rating": average,
		"rating_count":   count,
	})
}

func ListProviders(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")
	serviceType := c.Query("service_type")

	pageNum, err := helpers.StringToInt(page)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	query := gormDB.Model(&models.ServiceProvider{})
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var totalCount int64
	query.Count(&totalCount)

	var providers []models.ServiceProvider
	offset := (pageNum - 1) * limitNum
	err = query.Preload("User").Offset(offset).Limit(limitNum).Order("created_at DESC").Find(&providers).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving providers.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"providers":   providers,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + int64(limitNum) - 1) / int64(limitNum),
	})
}

func UpdateProvider(c *gin.Context) {
	providerID := c.Param("id")

	var req ProviderRequest
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

	var provider models.ServiceProvider
	if err := gormDB.Where("id = ? AND user_id = ?", providerID, userID).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusForbidden, "Provider not found or you don't have permission to update it.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding provider.")
		return
	}

	provider.ServiceType = req.ServiceType
	provider.Headline = req.Headline
	provider.Description = req.Description
	provider.RatePerEvent = req.RatePerEvent
	provider.Portfolio = req.Portfolio

	if err := gormDB.Save(&provider).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update provider.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Provider updated successfully.",
		"provider": provider,
	})
}
