// donation_controller_test.go - Tests for donations and the admin/ngo listings.

package controllers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taka_track/internal/config"
	"taka_track/internal/middleware"
	"taka_track/internal/models"
)

func setupDonationRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/ngos", ListNgos)
	r.GET("/api/ngos/:id", GetNgo)
	r.POST("/api/donate/:ngoId", middleware.RequireAuth(), Donate)
	r.GET("/api/donations/admin", middleware.RequireAuthWithRole("admin"), ListAllDonations)
	r.GET("/api/donations/ngo", middleware.RequireAuthWithRole("ngo"), ListNgoDonations)
	return r
}

func TestDonateAndListings(t *testing.T) {
	setupTestDB(t, "test_donations.db")
	router := setupDonationRouter()

	ngoUser, ngoToken := createAccount(t, "ngo@test.com", "ngo")
	ngo := models.Ngo{UserID: ngoUser.ID, Name: "Taka Heroes", Description: "River cleanups"}
	assert.NoError(t, config.DB.Create(&ngo).Error)

	_, donorToken := createAccount(t, "donor@test.com", "user")
	_, adminToken := createAccount(t, "admin@test.com", "admin")

	// Public NGO listing
	w := doJSON(router, "GET", "/api/ngos", "", nil)
	assert.Equal(t, 200, w.Code)
	var ngos struct {
		Data []models.Ngo `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ngos))
	assert.Len(t, ngos.Data, 1)

	w = doJSON(router, "GET", fmt.Sprintf("/api/ngos/%d", ngo.ID), "", nil)
	assert.Equal(t, 200, w.Code)
	w = doJSON(router, "GET", "/api/ngos/9999", "", nil)
	assert.Equal(t, 404, w.Code)

	// Donation requires a token
	donation := map[string]float64{"amount": 250}
	path := fmt.Sprintf("/api/donate/%d", ngo.ID)
	w = doJSON(router, "POST", path, "", donation)
	assert.Equal(t, 401, w.Code)

	w = doJSON(router, "POST", path, donorToken, donation)
	assert.Equal(t, 201, w.Code)

	// Unknown NGO and non-positive amounts rejected
	w = doJSON(router, "POST", "/api/donate/9999", donorToken, donation)
	assert.Equal(t, 404, w.Code)
	w = doJSON(router, "POST", path, donorToken, map[string]float64{"amount": 0})
	assert.Equal(t, 400, w.Code)

	// Admin sees every donation
	w = doJSON(router, "GET", "/api/donations/admin", adminToken, nil)
	assert.Equal(t, 200, w.Code)
	var all struct {
		Data []models.Donation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Data, 1)
	assert.Equal(t, 250.0, all.Data[0].Amount)

	// The NGO sees its own donations; other roles are refused
	w = doJSON(router, "GET", "/api/donations/ngo", ngoToken, nil)
	assert.Equal(t, 200, w.Code)
	var mine struct {
		Data []models.Donation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine.Data, 1)

	w = doJSON(router, "GET", "/api/donations/ngo", donorToken, nil)
	assert.Equal(t, 403, w.Code)
	w = doJSON(router, "GET", "/api/donations/admin", ngoToken, nil)
	assert.Equal(t, 403, w.Code)
}
