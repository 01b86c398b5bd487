// internal/router/router_test.go
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista-backend/internal/config"
)

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1, RefreshTokenTTL: 1},
		Geocoding:   config.GeocodingConfig{BaseURL: "http://localhost:1", Timeout: 1},
	}

	return Initialize(nil, cfg, nil)
}

func TestHealthEndpoint(t *testing.T) {
	r := testEngine(t)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := testEngine(t)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r := testEngine(t)

	paths := []string{
		"/v1/admin/properties",
		"/v1/admin/users",
		"/v1/admin/call-requests",
		"/v1/admin/analytics/summary",
		"/v1/admin/uploads/presign",
	}

	for _, path := range paths {
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)
	}
}

func TestSearchRequiresTerm(t *testing.T) {
	r := testEngine(t)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/properties/search", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestNearbyValidatesCoordinates(t *testing.T) {
	r := testEngine(t)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/properties/nearby?lat=999&lng=77", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
