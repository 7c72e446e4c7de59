package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taka_track/internal/config"
	"taka_track/internal/models"
)

// SchedulePickup creates a new pickup request for the authenticated user.
// Status always starts at Pending.
func SchedulePickup(c *gin.Context) {
	var input struct {
		WasteType string  `json:"waste_type" binding:"required"`
		Address   string  `json:"address" binding:"required"`
		Lat       float64 `json:"lat"`
		Lng       float64 `json:"lng"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup input: " + err.Error()})
		return
	}

	userID := uint(c.MustGet("user_id").(float64))

	pickup := models.Pickup{
		UserID:    userID,
		WasteType: input.WasteType,
		Address:   input.Address,
		Lat:       input.Lat,
		Lng:       input.Lng,
		Status:    models.PickupPending,
	}

	if err := config.DB.Create(&pickup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule pickup: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pickup": pickup})
}

// ListPickups returns all pickups. Administrative use.
func ListPickups(c *gin.Context) {
	var pickups []models.Pickup
	if err := config.DB.Find(&pickups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing pickups: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pickups})
}

// MyPickups returns the authenticated user's own pickups.
func MyPickups(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var pickups []models.Pickup
	if err := config.DB.Where("user_id = ?", userID).Find(&pickups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching pickups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pickups": pickups})
}

// CompletePickup marks a pickup Completed. The transition is one-way:
// a pickup that is already Completed stays that way and the call conflicts.
func CompletePickup(c *gin.Context) {
	pickupIDStr := c.Param("id")
	pickupID, err := strconv.ParseUint(pickupIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup ID format."})
		return
	}

	var pickup models.Pickup
	if err := config.DB.First(&pickup, uint(pickupID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching pickup: " + err.Error()})
		}
		return
	}

	if pickup.Status == models.PickupCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Pickup is already completed"})
		return
	}

	pickup.Status = models.PickupCompleted
	if err := config.DB.Save(&pickup).Error; err != nil {
		logrus.WithError(err).Error("CompletePickup: failed to save status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pickup: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pickup marked as completed.",
		"pickup":  pickup,
	})
}
