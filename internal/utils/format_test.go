// internal/utils/format_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"crore", 25000000, "INR", "₹2.5 Cr"},
		{"whole crore", 10000000, "INR", "₹1 Cr"},
		{"lakh", 150000, "INR", "₹1.5 Lakh"},
		{"below lakh", 95000, "INR", "₹95,000"},
		{"zero", 0, "INR", "Price on request"},
		{"default currency", 150000, "", "₹1.5 Lakh"},
		{"foreign currency", 1500000, "USD", "USD 1,500,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount, tt.currency))
		})
	}
}

func TestParsePriceRoundTrip(t *testing.T) {
	amounts := []float64{25000000, 10000000, 150000, 95000}

	for _, amount := range amounts {
		formatted := FormatPrice(amount, "INR")
		assert.InDelta(t, amount, ParsePrice(formatted), 0.01, "round trip for %v via %q", amount, formatted)
	}
}

func TestParsePrice(t *testing.T) {
	assert.InDelta(t, 25000000, ParsePrice("₹2.5 Cr"), 0.01)
	assert.InDelta(t, 150000, ParsePrice("₹1.5 Lakh"), 0.01)
	assert.InDelta(t, 95000, ParsePrice("₹95,000"), 0.01)
	assert.Equal(t, 0.0, ParsePrice(""))
}

func TestAreaConversions(t *testing.T) {
	assert.InDelta(t, 1076.4, SqMToSqFt(100), 0.01)
	assert.InDelta(t, 100, SqFtToSqM(SqMToSqFt(100)), 0.0001)
	assert.InDelta(t, 4046.86, AcresToSqFt(1), 0.01)
	assert.InDelta(t, 2, SqFtToAcres(AcresToSqFt(2)), 0.0001)
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "Area not specified", FormatArea(0))
	assert.Equal(t, "2,400 sq ft", FormatArea(2400))
	assert.Equal(t, "2.00 acres (87,120 sq ft)", FormatArea(87120))
}
