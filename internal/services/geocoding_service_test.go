// internal/services/geocoding_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista-backend/internal/config"
)

func TestForwardGeocode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Indiranagar Bengaluru", r.URL.Query().Get("q"))
		assert.Equal(t, "in", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"display_name": "Indiranagar, Bengaluru, Karnataka, India", "lat": "12.9719", "lon": "77.6412", "type": "suburb", "importance": 0.62},
			{"display_name": "Indiranagar, Chennai, Tamil Nadu, India", "lat": "13.0012", "lon": "80.2565", "type": "suburb", "importance": 0.41}
		]`))
	}))
	defer upstream.Close()

	service := NewGeocodingService(config.GeocodingConfig{
		BaseURL:     upstream.URL,
		CountryCode: "in",
		Timeout:     5,
	}, nil)

	results, err := service.ForwardGeocode(context.Background(), "Indiranagar Bengaluru", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Indiranagar, Bengaluru, Karnataka, India", results[0].DisplayName)
	assert.InDelta(t, 12.9719, results[0].Latitude, 0.0001)
	assert.InDelta(t, 77.6412, results[0].Longitude, 0.0001)
}

func TestForwardGeocodeSkipsMalformedCoordinates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"display_name": "Good", "lat": "12.0", "lon": "77.0"},
			{"display_name": "Bad", "lat": "not-a-number", "lon": "77.0"}
		]`))
	}))
	defer upstream.Close()

	service := NewGeocodingService(config.GeocodingConfig{BaseURL: upstream.URL, Timeout: 5}, nil)

	results, err := service.ForwardGeocode(context.Background(), "anywhere", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Good", results[0].DisplayName)
}

func TestForwardGeocodeUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	service := NewGeocodingService(config.GeocodingConfig{BaseURL: upstream.URL, Timeout: 5}, nil)

	_, err := service.ForwardGeocode(context.Background(), "anywhere", 5)
	assert.Error(t, err)
}
