package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"exact half rounds up", "2.5", 3},
		{"below half rounds down", "2.4", 2},
		{"just below half", "2.4999999", 2},
		{"above half", "2.51", 3},
		{"whole number", "7", 7},
		{"zero", "0", 0},
		{"large value", "1234567.5", 1234568},
		{"negative floors", "-2.3", -3},
		{"negative half floors", "-2.5", -3},
		{"negative whole", "-4", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundHalfUp(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestGrouped(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
		{-1234567, "-12,34,567"},
		{-999, "-999"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Grouped(tt.input), "Grouped(%d)", tt.input)
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "13,449", Amount(decimal.RequireFromString("13448.88")))
	assert.Equal(t, "2,125", Amount(decimal.RequireFromString("2124.70")))
	assert.Equal(t, "5,00,000", Amount(decimal.NewFromInt(500000)))
}

func TestRupeesAndPercent(t *testing.T) {
	assert.Equal(t, "₹1,00,000", Rupees(decimal.NewFromInt(100000)))
	assert.Equal(t, "14.47%", Percent(decimal.RequireFromString("14.4714"), 2))
	assert.Equal(t, "50.00%", Percent(decimal.NewFromInt(50), 2))
}
