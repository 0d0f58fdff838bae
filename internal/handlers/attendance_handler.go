package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/internal/feed"
	"github.com/flourishtalents/backend/internal/helpers"
	"github.com/flourishtalents/backend/internal/models"
)

func generateQRCodeData(attendance *models.Attendance) string {
	secretKey := os.Getenv("JWT_SECRET")
	signature := generateSignature(attendance.ID, attendance.EventID, attendance.UserID, secretKey)
	return fmt.Sprintf("attendance:%s;event:%s;signature:%s",
		attendance.ID.String(),
		attendance.EventID.String(),
		signature,
	)
}

func generateSignature(attendanceID, eventID, userID uuid.UUID, secretKey string) string {
	data := fmt.Sprintf("%s:%s:%s", attendanceID.String(), eventID.String(), userID.String())
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func extractAttendanceIDFromQRData(qrData string) (uuid.UUID, error) {
	parts := strings.Split(qrData, ";")
	if len(parts) != 3 || !strings.HasPrefix(parts[0], "attendance:") || !strings.HasPrefix(parts[2], "signature:") {
		return uuid.Nil, fmt.Errorf("invalid QR data format")
	}
	return uuid.Parse(strings.TrimPrefix(parts[0], "attendance:"))
}

func validateQRCodeSignature(attendance *models.Attendance, qrData string) bool {
	parts := strings.Split(qrData, ";")
	if len(parts) != 3 || !strings.HasPrefix(parts[2], "signature:") {
		return false
	}

	secretKey := os.Getenv("JWT_SECRET")
	signature := strings.TrimPrefix(parts[2], "signature:")
	expectedSignature := generateSignature(attendance.ID, attendance.EventID, attendance.UserID, secretKey)
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

func JoinEvent(c *gin.Context) {
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

	if !feed.VisibleInJoinTab(event, time.Now()) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	if event.Capacity > 0 {
		var attending int64
		if err := gormDB.Model(&models.Attendance{}).Where("event_id = ?", event.ID).Count(&attending).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error checking capacity.")
			return
		}
		if attending >= int64(event.Capacity) {
			helpers.RespondWithError(c, http.StatusConflict, "Event is at capacity.")
			return
		}
	}

	attendance := models.Attendance{
		ID:      uuid.New(),
		EventID: event.ID,
		UserID:  userID.(uuid.UUID),
	}

	if err := gormDB.Create(&attendance).Error; err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "You have already joined this event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Event joined successfully.",
		"attendance_id": attendance.ID,
	})
}

func LeaveEvent(c *gin.Context) {
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

	result := gormDB.Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&models.Attendance{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to leave event.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "You have not joined this event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event left successfully.",
	})
}

func GenerateAttendanceQR(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	attendanceIDStr := c.Param("id")
	attendanceID, err := uuid.Parse(attendanceIDStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found")
		return
	}
	gormDB := db.(*gorm.DB)

	var attendance models.Attendance
	if err := gormDB.Preload("Event").First(&attendance, attendanceID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Attendance not found")
		return
	}

	if attendance.UserID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to generate a QR code for this attendance")
		return
	}

	if attendance.CheckedIn {
		helpers.RespondWithError(c, http.StatusForbidden, "Already checked in")
		return
	}

	qrData := generateQRCodeData(&attendance)

	qrImage, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}

func CheckInAttendee(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found")
		return
	}
	gormDB := db.(*gorm.DB)

	var validationRequest struct {
		QRData string `json:"qr_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&validationRequest); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	attendanceID, err := extractAttendanceIDFromQRData(validationRequest.QRData)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid QR code format")
		return
	}

	var attendance models.Attendance
	if err := gormDB.Preload("Event").First(&attendance, attendanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Attendance not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving attendance")
		return
	}

	if !validateQRCodeSignature(&attendance, validationRequest.QRData) {
		helpers.RespondWithError(c, http.StatusForbidden, "Invalid QR code signature")
		return
	}

	if attendance.Event == nil || attendance.Event.OrganizerID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to check in attendees for this event")
		return
	}

	if attendance.CheckedIn {
		helpers.RespondWithError(c, http.StatusForbidden, "Already checked in")
		return
	}

	if err := gormDB.Model(&attendance).Update("checked_in", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to check in attendee")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendee checked in successfully",
		"attendance": gin.H{
			"event_title": attendance.Event.Title,
			"user_id":     attendance.UserID,
		},
	})
}
