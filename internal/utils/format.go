// internal/utils/format.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SqFtPerSqM   = 10.764
	SqFtPerAcre  = 4046.86
	sqFtInAcre   = 43560.0
	lakh         = 100000.0
	crore        = 10000000.0
)

// FormatPrice renders an amount the way listings display it:
// INR amounts collapse to Lakh/Cr above their thresholds.
func FormatPrice(amount float64, currency string) string {
	if amount == 0 {
		return "Price on request"
	}
	if currency == "" {
		currency = "INR"
	}

	if currency == "INR" {
		switch {
		case amount >= crore:
			return fmt.Sprintf("₹%s Cr", trimTrailingZero(amount/crore))
		case amount >= lakh:
			return fmt.Sprintf("₹%s Lakh", trimTrailingZero(amount/lakh))
		default:
			return "₹" + groupThousands(amount)
		}
	}

	return fmt.Sprintf("%s %s", currency, groupThousands(amount))
}

// ParsePrice is the inverse of FormatPrice for the Lakh/Cr short forms.
func ParsePrice(priceString string) float64 {
	if priceString == "" {
		return 0
	}

	clean := strings.NewReplacer("₹", "", "$", "", ",", "").Replace(priceString)
	clean = strings.TrimSpace(clean)

	switch {
	case strings.Contains(clean, "Cr"):
		v, _ := strconv.ParseFloat(strings.TrimSpace(strings.Replace(clean, "Cr", "", 1)), 64)
		return v * crore
	case strings.Contains(clean, "Lakh"):
		v, _ := strconv.ParseFloat(strings.TrimSpace(strings.Replace(clean, "Lakh", "", 1)), 64)
		return v * lakh
	default:
		v, _ := strconv.ParseFloat(clean, 64)
		return v
	}
}

func SqMToSqFt(sqM float64) float64 { return sqM * SqFtPerSqM }

func SqFtToSqM(sqFt float64) float64 { return sqFt / SqFtPerSqM }

func AcresToSqFt(acres float64) float64 { return acres * SqFtPerAcre }

func SqFtToAcres(sqFt float64) float64 { return sqFt / SqFtPerAcre }

// FormatArea renders an area in square feet, collapsing to acres when large.
func FormatArea(areaSqFt float64) string {
	if areaSqFt == 0 {
		return "Area not specified"
	}

	if areaSqFt >= sqFtInAcre {
		return fmt.Sprintf("%.2f acres (%s sq ft)", areaSqFt/sqFtInAcre, groupThousands(areaSqFt))
	}
	return groupThousands(areaSqFt) + " sq ft"
}

func trimTrailingZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func groupThousands(v float64) string {
	whole := strconv.FormatInt(int64(v), 10)

	neg := false
	if strings.HasPrefix(whole, "-") {
		neg = true
		whole = whole[1:]
	}

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
