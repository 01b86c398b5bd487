// internal/utils/sort_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plotvista/plotvista-backend/internal/models"
)

func sortFixture() []models.Property {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	a := models.Property{ID: "PLOT001", Price: models.Price{Amount: 5000000}, Dimensions: models.Dimensions{AreaSqFt: 2400}}
	a.CreatedAt = base
	b := models.Property{ID: "PLOT002", Price: models.Price{Amount: 1500000}, Dimensions: models.Dimensions{AreaSqFt: 4800}}
	b.CreatedAt = base.AddDate(0, 0, 2)
	c := models.Property{ID: "PLOT003", Price: models.Price{Amount: 9000000}, Dimensions: models.Dimensions{AreaSqFt: 1200}}
	c.CreatedAt = base.AddDate(0, 0, 1)

	return []models.Property{a, b, c}
}

func ids(properties []models.Property) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.ID
	}
	return out
}

func TestSortProperties(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{SortPriceAsc, []string{"PLOT002", "PLOT001", "PLOT003"}},
		{SortPriceDesc, []string{"PLOT003", "PLOT001", "PLOT002"}},
		{SortSizeAsc, []string{"PLOT003", "PLOT001", "PLOT002"}},
		{SortSizeDesc, []string{"PLOT002", "PLOT001", "PLOT003"}},
		{SortNewest, []string{"PLOT002", "PLOT003", "PLOT001"}},
		{SortOldest, []string{"PLOT001", "PLOT003", "PLOT002"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			properties := sortFixture()
			SortProperties(properties, tt.key)
			assert.Equal(t, tt.want, ids(properties))
		})
	}
}

func TestSortPropertiesUnknownKeyKeepsOrder(t *testing.T) {
	properties := sortFixture()
	SortProperties(properties, "upside-down")
	assert.Equal(t, []string{"PLOT001", "PLOT002", "PLOT003"}, ids(properties))
}

func TestSortPropertiesStableOnTies(t *testing.T) {
	properties := sortFixture()
	for i := range properties {
		properties[i].Price.Amount = 1000000
	}

	SortProperties(properties, SortPriceAsc)
	assert.Equal(t, []string{"PLOT001", "PLOT002", "PLOT003"}, ids(properties))
}

func TestValidSortKey(t *testing.T) {
	for _, key := range []string{SortPriceAsc, SortPriceDesc, SortSizeAsc, SortSizeDesc, SortNewest, SortOldest} {
		assert.True(t, ValidSortKey(key), key)
	}
	assert.False(t, ValidSortKey("price"))
	assert.False(t, ValidSortKey(""))
}
