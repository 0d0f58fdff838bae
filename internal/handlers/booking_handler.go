package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	invoice "github.com/xendit/xendit-go/v6/invoice"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/helpers"
	"github.com/flourishtalents/backend/internal/middleware"
	"github.com/flourishtalents/backend/internal/models"
)

type BookingRequest struct {
	EventID    uuid.UUID `json:"event_id" binding:"required"`
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	Notes      string    `json:"notes"`
}

// CreateBooking hires a provider for one of the caller's events. The
// booking starts out pending; the returned payment URL comes from a
// xendit invoice and settles the booking out of band.
func CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	userUUID, ok := userID.(uuid.UUID)
	if !ok {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID type.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ? AND organizer_id = ?", req.EventID, userUUID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to book for it.")
		return
	}

	var provider models.ServiceProvider
	if err := gormDB.Preload("User").Where("id = ?", req.ProviderID).First(&provider).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Provider not found.")
		return
	}

	var user models.User
	if err := gormDB.First(&user, userUUID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	booking := models.ServiceBooking{
		ID:         uuid.New(),
		EventID:    event.ID,
		ProviderID: provider.ID,
		UserID:     userUUID,
		Amount:     provider.RatePerEvent,
		Status:     models.BookingPending,
		Notes:      req.Notes,
	}

	if err := gormDB.Create(&booking).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking.")
		return
	}

	xenditClient := middleware.GetXenditClient(c)
	if xenditClient == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Payment client not configured.")
		return
	}

	invoiceRequest := invoice.NewCreateInvoiceRequest("booking-"+booking.ID.String(), booking.Amount)
	invoiceRequest.SetDescription(fmt.Sprintf("%s for %s", provider.ServiceType, event.Title))
	invoiceRequest.SetPayerEmail(user.Email)

	createdInvoice, _, xenditErr := xenditClient.InvoiceApi.CreateInvoice(c).
		CreateInvoiceRequest(*invoiceRequest).
		Execute()
	if xenditErr != nil {
		helpers.RespondWithError(c, http.StatusBadGateway, "Failed to create payment invoice.")
		return
	}

	invoiceURL := createdInvoice.GetInvoiceUrl()
	if err := gormDB.Model(&booking).Update("invoice_url", invoiceURL).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save invoice URL.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking created successfully.",
		"booking_id":  booking.ID,
		"payment_url": invoiceURL,
	})
}

func ListMyBookings(c *gin.Context) {
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

	var bookings []models.ServiceBooking
	err := gormDB.Preload("Event").Preload("Provider.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// ConfirmBooking lets the booked provider accept the engagement.
func ConfirmBooking(c *gin.Context) {
	bookingID := c.Param("id")
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

	var booking models.ServiceBooking
	if err := gormDB.Preload("Provider").Where("id = ?", bookingID).First(&booking).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found.")
		return
	}

	if booking.Provider == nil || booking.Provider.UserID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to confirm this booking.")
		return
	}

	if booking.Status == models.BookingCancelled {
		helpers.RespondWithError(c, http.StatusBadRequest, "Booking has been cancelled.")
		return
	}

	if err := gormDB.Model(&booking).Update("status", models.BookingConfirmed).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to confirm booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed.",
	})
}

func CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
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

	var booking models.ServiceBooking
	if err := gormDB.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
		helpers.RespondWithError(c, http.StatusForbidden, "Booking not found or you don't have permission to cancel it.")
		return
	}

	if booking.Status == models.BookingCancelled {
		helpers.RespondWithError(c, http.StatusBadRequest, "Booking is already cancelled.")
		return
	}

	if err := gormDB.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled.",
	})
}
