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

// Donate records a donation from the authenticated account to the NGO
// named in the URL.
func Donate(c *gin.Context) {
	donorID := uint(c.MustGet("user_id").(float64))

	ngoIDStr := c.Param("ngoId")
	ngoID, err := strconv.ParseUint(ngoIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid NGO ID format."})
		return
	}

	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation input: " + err.Error()})
		return
	}

	var ngo models.Ngo
	if err := config.DB.First(&ngo, uint(ngoID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ngo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching ngo: " + err.Error()})
		}
		return
	}

	donation := models.Donation{
		Amount:  input.Amount,
		DonorID: donorID,
		NgoID:   ngo.ID,
	}
	if err := config.DB.Create(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"donation": donation})
}

// ListAllDonations returns every donation. Administrative use.
func ListAllDonations(c *gin.Context) {
	var donations []models.Donation
	if err := config.DB.Find(&donations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing donations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": donations})
}

// ListNgoDonations returns the donations received by the caller's NGO.
func ListNgoDonations(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var ngo models.Ngo
	if err := config.DB.Where("user_id = ?", userID).First(&ngo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ngo profile not found for this account"})
		return
	}

	var donations []models.Donation
	if err := config.DB.Where("ngo_id = ?", ngo.ID).Find(&donations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing donations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": donations})
}
