// internal/utils/geo_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoundingBoxContainsCenter(t *testing.T) {
	// Bengaluru
	box := NewBoundingBox(12.9716, 77.5946, 10)

	assert.True(t, box.Contains(12.9716, 77.5946))
}

func TestNewBoundingBoxExcludesBeyondRadius(t *testing.T) {
	box := NewBoundingBox(12.9716, 77.5946, 10)

	// ~111km north of the center
	assert.False(t, box.Contains(13.9716, 77.5946))
	// Just past the latitude edge
	assert.False(t, box.Contains(12.9716+10.0/111.0+0.001, 77.5946))
}

func TestNewBoundingBoxDeltas(t *testing.T) {
	box := NewBoundingBox(0, 0, 111)

	// At the equator a 111km radius spans one degree both ways
	assert.InDelta(t, -1, box.MinLat, 0.0001)
	assert.InDelta(t, 1, box.MaxLat, 0.0001)
	assert.InDelta(t, -1, box.MinLng, 0.0001)
	assert.InDelta(t, 1, box.MaxLng, 0.0001)
}

func TestNewBoundingBoxLongitudeWidensWithLatitude(t *testing.T) {
	equator := NewBoundingBox(0, 77, 10)
	north := NewBoundingBox(60, 77, 10)

	equatorWidth := equator.MaxLng - equator.MinLng
	northWidth := north.MaxLng - north.MinLng

	// A longitude degree shrinks toward the poles, so the box widens
	assert.Greater(t, northWidth, equatorWidth)
}
