// internal/utils/geo.go
package utils

import "math"

const kmPerDegreeLat = 111.0

// BoundingBox is an equirectangular approximation of a radius search:
// one degree of latitude is ~111km, and a degree of longitude shrinks by
// cos(latitude). Not geodesic, but cheap and good enough for listing search.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func NewBoundingBox(lat, lng, radiusKm float64) BoundingBox {
	latDelta := radiusKm / kmPerDegreeLat
	lngDelta := radiusKm / (kmPerDegreeLat * math.Cos(lat*math.Pi/180))

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}

func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}
