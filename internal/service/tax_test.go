package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nairapay/payroll-engine/internal/domain"
)

func TestCalculateAnnualPAYE(t *testing.T) {
	table := domain.DefaultBracketTable()

	tests := []struct {
		name     string
		taxable  decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "zero taxable income",
			taxable:  decimal.Zero,
			expected: decimal.Zero,
		},
		{
			name:     "negative taxable income yields zero",
			taxable:  decimal.NewFromInt(-1000),
			expected: decimal.Zero,
		},
		{
			name:     "entirely inside the zero-rate bracket",
			taxable:  decimal.NewFromInt(800000),
			expected: decimal.Zero,
		},
		{
			name:     "boundary of the 15% bracket",
			taxable:  decimal.NewFromInt(3000000),
			expected: decimal.NewFromInt(330000), // 2,200,000 * 0.15
		},
		{
			name:     "boundary of the 18% bracket",
			taxable:  decimal.NewFromInt(12000000),
			expected: decimal.NewFromInt(1950000), // 330,000 + 9,000,000 * 0.18
		},
		{
			name:     "boundary of the 21% bracket",
			taxable:  decimal.NewFromInt(25000000),
			expected: decimal.NewFromInt(4680000), // 1,950,000 + 13,000,000 * 0.21
		},
		{
			name:     "boundary of the 23% bracket",
			taxable:  decimal.NewFromInt(50000000),
			expected: decimal.NewFromInt(10430000), // 4,680,000 + 25,000,000 * 0.23
		},
		{
			name:     "income spilling into the unbounded 25% bracket",
			taxable:  decimal.NewFromInt(60000000),
			expected: decimal.NewFromInt(12930000), // 10,430,000 + 10,000,000 * 0.25
		},
		{
			name:     "mid-bracket value from the regression scenario",
			taxable:  decimal.NewFromInt(3904000),
			expected: decimal.NewFromInt(492720), // 330,000 + 904,000 * 0.18
		},
		{
			name:     "fractional taxable income rounds once at the end",
			taxable:  decimal.RequireFromString("2343709.72"),
			expected: decimal.RequireFromString("231556.46"), // 1,543,709.72 * 0.15 = 231,556.458
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateAnnualPAYE(tt.taxable, table)
			assert.True(t, result.Equal(tt.expected),
				"expected %s, got %s", tt.expected, result)
		})
	}
}

func TestCalculateAnnualPAYESingleUnboundedBracket(t *testing.T) {
	flat := domain.BracketTable{
		Version: "flat-10",
		Brackets: []domain.TaxBracket{
			{Width: decimal.Zero, Rate: decimal.RequireFromString("0.10")},
		},
	}

	result := CalculateAnnualPAYE(decimal.NewFromInt(1234567), flat)
	assert.True(t, result.Equal(decimal.RequireFromString("123456.70")),
		"expected 123456.70, got %s", result)
}
