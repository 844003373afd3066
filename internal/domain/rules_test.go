package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customError "github.com/nairapay/payroll-engine/pkg/errors"
)

func TestDefaultBracketTableIsValid(t *testing.T) {
	table := DefaultBracketTable()
	require.NoError(t, table.Validate())
	assert.Equal(t, "2026-paye", table.Version)
	assert.Len(t, table.Brackets, 6)
	assert.True(t, table.Brackets[len(table.Brackets)-1].Unbounded())
}

func TestParseBracketTable(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		expectError bool
		check       func(*testing.T, BracketTable)
	}{
		{
			name: "valid three-bracket table",
			spec: "800000:0.00,2200000:0.15,0:0.25",
			check: func(t *testing.T, table BracketTable) {
				require.Len(t, table.Brackets, 3)
				assert.True(t, table.Brackets[0].Width.Equal(decimal.NewFromInt(800000)))
				assert.True(t, table.Brackets[1].Rate.Equal(decimal.RequireFromString("0.15")))
				assert.True(t, table.Brackets[2].Unbounded())
			},
		},
		{
			name: "whitespace around entries is tolerated",
			spec: "800000:0.00, 0:0.25",
			check: func(t *testing.T, table BracketTable) {
				require.Len(t, table.Brackets, 2)
			},
		},
		{
			name:        "empty specification",
			spec:        "",
			expectError: true,
		},
		{
			name:        "entry without a rate",
			spec:        "800000",
			expectError: true,
		},
		{
			name:        "non-numeric width",
			spec:        "lots:0.15",
			expectError: true,
		},
		{
			name:        "non-numeric rate",
			spec:        "800000:cheap",
			expectError: true,
		},
		{
			name:        "unbounded bracket before the end",
			spec:        "0:0.25,800000:0.00",
			expectError: true,
		},
		{
			name:        "rate above one",
			spec:        "800000:1.5",
			expectError: true,
		},
		{
			name:        "negative width",
			spec:        "-800000:0.10",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseBracketTable("test", tt.spec)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, customError.ErrInvalidBracketTable))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", table.Version)
			tt.check(t, table)
		})
	}
}

func TestSalaryStructureSums(t *testing.T) {
	ss := NewSalaryStructure("EMP001", "Test Person")
	ss.BasicSalary = decimal.NewFromInt(200000)
	ss.HousingAllowance = decimal.NewFromInt(100000)
	ss.TransportAllowance = decimal.NewFromInt(50000)
	ss.MealAllowance = decimal.NewFromInt(10000)
	ss.UtilityAllowance = decimal.NewFromInt(5000)
	ss.OtherAllowances = decimal.NewFromInt(50000)
	ss.Bonus = decimal.NewFromInt(20000)
	ss.Overtime = decimal.NewFromInt(15000)

	assert.True(t, ss.TotalEarnings().Equal(decimal.NewFromInt(450000)))
	// pension base is basic + housing + transport only
	assert.True(t, ss.PensionableEarnings().Equal(decimal.NewFromInt(350000)))
	assert.Len(t, ss.MonetaryFields(), 10)
}

func TestNewSalaryStructureDefaults(t *testing.T) {
	ss := NewSalaryStructure("EMP001", "Test Person")

	assert.Equal(t, EmploymentFullTime, ss.EmploymentType)
	assert.Equal(t, DefaultTotalDays, ss.TotalDays)
	assert.Nil(t, ss.DaysWorked)
	assert.True(t, ss.TotalEarnings().IsZero())
}

func TestDefaultStatutoryRules(t *testing.T) {
	rules := DefaultStatutoryRules()

	assert.True(t, rules.PensionEmployeeRate.Equal(decimal.RequireFromString("0.08")))
	assert.True(t, rules.PensionEmployerRate.Equal(decimal.RequireFromString("0.10")))
	assert.True(t, rules.NHFRate.Equal(decimal.RequireFromString("0.025")))
	assert.True(t, rules.NHFMinimumBasic.Equal(decimal.NewFromInt(3000)))
	assert.True(t, rules.RentReliefRate.Equal(decimal.RequireFromString("0.20")))
	assert.True(t, rules.RentReliefCap.Equal(decimal.NewFromInt(500000)))
}
