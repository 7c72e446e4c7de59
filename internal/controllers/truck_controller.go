package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taka_track/internal/config"
	"taka_track/internal/models"
)

// serviceStatusPayload defines the expected JSON for updating truck service status.
type serviceStatusPayload struct {
	InService *bool `json:"in_service" binding:"required"`
}

// CreateTruck registers a collection truck for a driver. Administrative use;
// defaults InService to true.
func CreateTruck(c *gin.Context) {
	var input struct {
		RegistrationNo string `json:"registration_no" binding:"required"`
		CapacityKg     int    `json:"capacity_kg"`
		DriverID       uint   `json:"driver_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck input: " + err.Error()})
		return
	}

	var driver models.User
	if err := config.DB.Where("id = ? AND role = ?", input.DriverID, "driver").First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "driver_id does not refer to a driver account"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching driver: " + err.Error()})
		}
		return
	}

	truck := models.Truck{
		RegistrationNo: input.RegistrationNo,
		CapacityKg:     input.CapacityKg,
		DriverID:       input.DriverID,
		InService:      true,
	}

	if err := config.DB.Create(&truck).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create truck: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"truck": truck})
}

// ListTrucks returns all trucks. Administrative use.
func ListTrucks(c *gin.Context) {
	var trucks []models.Truck
	if err := config.DB.Find(&trucks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trucks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trucks})
}

// SetTruckServiceStatus allows a driver to change their own truck's
// in_service flag. The truck must be assigned to the authenticated driver.
func SetTruckServiceStatus(c *gin.Context) {
	driverID := uint(c.MustGet("user_id").(float64))

	truckIDStr := c.Param("id")
	truckID, err := strconv.ParseUint(truckIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Truck ID format."})
		return
	}

	var truck models.Truck
	if err := config.DB.
		Where("id = ? AND driver_id = ?", uint(truckID), driverID).
		First(&truck).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found or not assigned to you."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching truck: " + err.Error()})
		}
		return
	}

	var payload serviceStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	truck.InService = *payload.InService
	if err := config.DB.Save(&truck).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service status updated successfully.",
		"truck":   truck,
	})
}
