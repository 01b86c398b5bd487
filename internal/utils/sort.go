// internal/utils/sort.go
package utils

import (
	"sort"

	"github.com/plotvista/plotvista-backend/internal/models"
)

// Sort keys accepted by listing endpoints.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortSizeAsc   = "size-asc"
	SortSizeDesc  = "size-desc"
	SortNewest    = "newest"
	SortOldest    = "oldest"
)

func ValidSortKey(key string) bool {
	switch key {
	case SortPriceAsc, SortPriceDesc, SortSizeAsc, SortSizeDesc, SortNewest, SortOldest:
		return true
	}
	return false
}

// SortProperties orders a slice in place by the given key. The sort is
// stable so equal elements keep their fetch order.
func SortProperties(properties []models.Property, key string) {
	less := func(a, b *models.Property) bool { return false }

	switch key {
	case SortPriceAsc:
		less = func(a, b *models.Property) bool { return a.Price.Amount < b.Price.Amount }
	case SortPriceDesc:
		less = func(a, b *models.Property) bool { return a.Price.Amount > b.Price.Amount }
	case SortSizeAsc:
		less = func(a, b *models.Property) bool { return a.Dimensions.AreaSqFt < b.Dimensions.AreaSqFt }
	case SortSizeDesc:
		less = func(a, b *models.Property) bool { return a.Dimensions.AreaSqFt > b.Dimensions.AreaSqFt }
	case SortNewest:
		less = func(a, b *models.Property) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortOldest:
		less = func(a, b *models.Property) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(properties, func(i, j int) bool {
		return less(&properties[i], &properties[j])
	})
}
