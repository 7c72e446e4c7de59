package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taka_track/internal/config"
	"taka_track/internal/models"
)

// ListNgos lists all NGOs
func ListNgos(c *gin.Context) {
	var ngos []models.Ngo
	if err := config.DB.Find(&ngos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch ngos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ngos})
}

// GetNgo retrieves an NGO by ID
func GetNgo(c *gin.Context) {
	id := c.Param("id")
	var ngo models.Ngo
	if err := config.DB.First(&ngo, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ngo not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ngo": ngo})
}
