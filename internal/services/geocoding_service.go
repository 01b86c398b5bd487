// internal/services/geocoding_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plotvista/plotvista-backend/internal/cache"
	"github.com/plotvista/plotvista-backend/internal/config"
)

const geocodeCacheTTL = 24 * time.Hour

// GeocodingService proxies forward-geocoding lookups to Nominatim so the
// frontend never talks to the upstream directly and results get cached.
type GeocodingService struct {
	httpClient  *http.Client
	cfg         config.GeocodingConfig
	cacheClient *cache.Client
}

type GeocodeResult struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	Importance  float64 `json:"importance"`
}

func NewGeocodingService(cfg config.GeocodingConfig, cacheClient *cache.Client) *GeocodingService {
	return &GeocodingService{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		cfg:         cfg,
		cacheClient: cacheClient,
	}
}

// ForwardGeocode resolves a free-text place query to coordinates. Results
// are biased to the configured country and cached for a day.
func (s *GeocodingService) ForwardGeocode(ctx context.Context, query string, limit int) ([]GeocodeResult, error) {
	if limit <= 0 || limit > 10 {
		limit = 5
	}

	cacheKey := cache.QueryKey("geocode", map[string]string{
		"q":     query,
		"limit": strconv.Itoa(limit),
	})

	var cached []GeocodeResult
	if hit, err := s.cacheClient.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "0")
	if s.cfg.CountryCode != "" {
		params.Set("countrycodes", s.cfg.CountryCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.cfg.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying user agent
	req.Header.Set("User-Agent", "plotvista-backend/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geocoding upstream returned %d: %s", resp.StatusCode, string(body))
	}

	var raw []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	results := make([]GeocodeResult, 0, len(raw))
	for _, r := range raw {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		results = append(results, GeocodeResult{
			DisplayName: r.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
			Type:        r.Type,
			Importance:  r.Importance,
		})
	}

	if err := s.cacheClient.Set(ctx, cacheKey, results, geocodeCacheTTL); err != nil {
		logrus.WithError(err).Warn("Failed to cache geocode result")
	}

	return results, nil
}
