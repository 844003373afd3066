package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{
			name:     "already two places",
			amount:   "100.25",
			expected: "100.25",
		},
		{
			name:     "half rounds up",
			amount:   "100.255",
			expected: "100.26",
		},
		{
			name:     "below half rounds down",
			amount:   "100.254",
			expected: "100.25",
		},
		{
			name:     "repeating fraction",
			amount:   "137096.774193548387",
			expected: "137096.77",
		},
		{
			name:     "whole number untouched",
			amount:   "400000",
			expected: "400000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundMoney(decimal.RequireFromString(tt.amount))
			assert.True(t, result.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, result)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{
			name:     "small amount",
			amount:   "75",
			expected: "₦75.00",
		},
		{
			name:     "thousands grouping",
			amount:   "400000",
			expected: "₦400,000.00",
		},
		{
			name:     "millions grouping",
			amount:   "4800000",
			expected: "₦4,800,000.00",
		},
		{
			name:     "fractional amount",
			amount:   "137096.77",
			expected: "₦137,096.77",
		},
		{
			name:     "negative net",
			amount:   "-674060.5",
			expected: "₦-674,060.50",
		},
		{
			name:     "zero",
			amount:   "0",
			expected: "₦0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatMoney(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	result := FormatAmount(decimal.RequireFromString("1234567.891"))
	assert.Equal(t, "1,234,567.89", result)
}

func TestDecimalFromString(t *testing.T) {
	d, err := DecimalFromString("200000.50")
	assert.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("200000.50")))

	_, err = DecimalFromString("not-a-number")
	assert.Error(t, err)
}
