package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/repository"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/service"
)

type stubWeather struct{}

func (stubWeather) FetchCityTemperature(ctx context.Context, city string) (float64, error) {
	return 20, nil
}

func setupTestRouter() (*gin.Engine, *service.UserService) {
	gin.SetMode(gin.TestMode)

	userService := service.NewUserService(repository.NewUserRepo(), stubWeather{})

	router := gin.New()
	SetupRoutes(router, userService, "secret")

	return router, userService
}

func TestHealth(t *testing.T) {
	router, _ := setupTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestStatsRequiresKey(t *testing.T) {
	router, _ := setupTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStats(t *testing.T) {
	router, userService := setupTestRouter()

	userService.SetProfile(service.CreateProfileDTO{TelegramID: 1, Name: "Test User", Weight: 70, Height: 175, Age: 30, Activity: 60, City: "Berlin"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("X-Admin-Key", "secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"users":1`)
}
