package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	customError "github.com/nairapay/payroll-engine/pkg/errors"
)

// StatutoryRules holds every statutory rate and threshold the engine
// applies. A single fixed rule set is modeled; swapping this struct (plus
// the bracket table) is how a future tax year would be introduced.
type StatutoryRules struct {
	PensionEmployeeRate decimal.Decimal `json:"pension_employee_rate"`
	PensionEmployerRate decimal.Decimal `json:"pension_employer_rate"`

	NHFRate         decimal.Decimal `json:"nhf_rate"`
	NHFMinimumBasic decimal.Decimal `json:"nhf_minimum_basic"` // monthly, compared against prorated basic

	RentReliefRate decimal.Decimal `json:"rent_relief_rate"`
	RentReliefCap  decimal.Decimal `json:"rent_relief_cap"` // annual

	// Employer-only levies on total payroll. The rates are part of the rule
	// set but the engine does not compute or surface them: the upstream
	// system defines them without ever applying them, and the per-employee
	// result is the wrong place for a total-payroll levy.
	NSITFRate decimal.Decimal `json:"nsitf_rate"`
	ITFRate   decimal.Decimal `json:"itf_rate"`

	// MaxMonthlyAmount rejects absurd inputs before they reach the
	// arithmetic. Zero disables the guard.
	MaxMonthlyAmount decimal.Decimal `json:"max_monthly_amount"`
}

// DefaultStatutoryRules returns the current FIRS/PenCom/NHF rule set.
func DefaultStatutoryRules() StatutoryRules {
	return StatutoryRules{
		PensionEmployeeRate: decimal.RequireFromString("0.08"),
		PensionEmployerRate: decimal.RequireFromString("0.10"),
		NHFRate:             decimal.RequireFromString("0.025"),
		NHFMinimumBasic:     decimal.RequireFromString("3000"),
		RentReliefRate:      decimal.RequireFromString("0.20"),
		RentReliefCap:       decimal.RequireFromString("500000"),
		NSITFRate:           decimal.RequireFromString("0.01"),
		ITFRate:             decimal.RequireFromString("0.01"),
		MaxMonthlyAmount:    decimal.RequireFromString("1000000000000"), // ₦1 trillion/month
	}
}

// TaxBracket is one slice of the progressive PAYE scale. Width is the size
// of the bracket, not a cumulative ceiling. A zero Width marks the final,
// unbounded bracket.
type TaxBracket struct {
	Width decimal.Decimal `json:"width"`
	Rate  decimal.Decimal `json:"rate"`
}

// Unbounded reports whether the bracket absorbs all remaining income.
func (b TaxBracket) Unbounded() bool {
	return b.Width.IsZero()
}

// BracketTable is an ordered, versioned progressive tax scale.
type BracketTable struct {
	Version  string       `json:"version"`
	Brackets []TaxBracket `json:"brackets"`
}

// DefaultBracketTable returns the 2026 annual PAYE scale.
func DefaultBracketTable() BracketTable {
	return BracketTable{
		Version: "2026-paye",
		Brackets: []TaxBracket{
			{Width: decimal.RequireFromString("800000"), Rate: decimal.RequireFromString("0.00")},
			{Width: decimal.RequireFromString("2200000"), Rate: decimal.RequireFromString("0.15")},
			{Width: decimal.RequireFromString("9000000"), Rate: decimal.RequireFromString("0.18")},
			{Width: decimal.RequireFromString("13000000"), Rate: decimal.RequireFromString("0.21")},
			{Width: decimal.RequireFromString("25000000"), Rate: decimal.RequireFromString("0.23")},
			{Width: decimal.Zero, Rate: decimal.RequireFromString("0.25")},
		},
	}
}

// ParseBracketTable builds a table from its compact string form:
// "width:rate,width:rate,...", e.g. "800000:0.00,2200000:0.15,0:0.25".
// A zero width is only valid on the last entry.
func ParseBracketTable(version, spec string) (BracketTable, error) {
	parts := strings.Split(spec, ",")
	if len(parts) == 0 || spec == "" {
		return BracketTable{}, customError.WrapInvalidBracketTable(version, "empty bracket specification")
	}

	brackets := make([]TaxBracket, 0, len(parts))
	for i, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 2 {
			return BracketTable{}, customError.WrapInvalidBracketTable(version, fmt.Sprintf("entry %d must be width:rate", i+1))
		}

		width, err := decimal.NewFromString(fields[0])
		if err != nil {
			return BracketTable{}, customError.WrapInvalidBracketTable(version, fmt.Sprintf("entry %d has invalid width %q", i+1, fields[0]))
		}
		rate, err := decimal.NewFromString(fields[1])
		if err != nil {
			return BracketTable{}, customError.WrapInvalidBracketTable(version, fmt.Sprintf("entry %d has invalid rate %q", i+1, fields[1]))
		}

		brackets = append(brackets, TaxBracket{Width: width, Rate: rate})
	}

	table := BracketTable{Version: version, Brackets: brackets}
	if err := table.Validate(); err != nil {
		return BracketTable{}, err
	}
	return table, nil
}

// Validate checks ordering and rate sanity for the table.
func (t BracketTable) Validate() error {
	if len(t.Brackets) == 0 {
		return customError.WrapInvalidBracketTable(t.Version, "table has no brackets")
	}

	one := decimal.NewFromInt(1)
	for i, b := range t.Brackets {
		if b.Width.IsNegative() {
			return customError.WrapInvalidBracketTable(t.Version, fmt.Sprintf("bracket %d has negative width", i+1))
		}
		if b.Unbounded() && i != len(t.Brackets)-1 {
			return customError.WrapInvalidBracketTable(t.Version, fmt.Sprintf("bracket %d is unbounded but not last", i+1))
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return customError.WrapInvalidBracketTable(t.Version, fmt.Sprintf("bracket %d rate must be within [0, 1]", i+1))
		}
	}
	return nil
}
