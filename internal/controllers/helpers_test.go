// helpers_test.go - Shared fixtures for controller tests.
// Each test opens a fresh sqlite database and builds a minimal router with
// the same middleware chain the real route groups use.

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"taka_track/internal/config"
	"taka_track/internal/middleware"
	"taka_track/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB creates a fresh test database for each test run
func setupTestDB(t *testing.T, path string) {
	t.Helper()
	config.InitTestDB(path)
	t.Cleanup(func() { _ = os.Remove(path) })
}

// createAccount inserts a user with the given role and returns it with a
// signed bearer token.
func createAccount(t *testing.T, email, role string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := models.User{
		Name:     "Test " + role,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("creating %s account: %v", role, err)
	}
	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return user, token
}

// doJSON performs a JSON request against the router, with an optional bearer token.
func doJSON(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}
