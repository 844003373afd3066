package domain

import (
	"github.com/shopspring/decimal"
)

// Employment types. Informational only: none of them alter the calculation.
const (
	EmploymentFullTime = "full-time"
	EmploymentPartTime = "part-time"
	EmploymentContract = "contract"
	EmploymentIntern   = "intern"
)

// DefaultTotalDays is the assumed length of a pay period when the caller
// does not specify one.
const DefaultTotalDays = 30

// SalaryStructure is the full set of salary components for one employee for
// one pay period. All monetary fields are Naira amounts with arbitrary
// precision; the engine never touches binary floats.
type SalaryStructure struct {
	EmployeeID   string `json:"employee_id" validate:"required"`
	EmployeeName string `json:"employee_name"`

	// Earnings
	BasicSalary        decimal.Decimal `json:"basic_salary" validate:"gte=0"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance" validate:"gte=0"`
	TransportAllowance decimal.Decimal `json:"transport_allowance" validate:"gte=0"`
	MealAllowance      decimal.Decimal `json:"meal_allowance" validate:"gte=0"`
	UtilityAllowance   decimal.Decimal `json:"utility_allowance" validate:"gte=0"`
	OtherAllowances    decimal.Decimal `json:"other_allowances" validate:"gte=0"`
	Bonus              decimal.Decimal `json:"bonus" validate:"gte=0"`
	Overtime           decimal.Decimal `json:"overtime" validate:"gte=0"`

	// Non-statutory deductions, passed through unprorated
	LoanRepayment   decimal.Decimal `json:"loan_repayment" validate:"gte=0"`
	OtherDeductions decimal.Decimal `json:"other_deductions" validate:"gte=0"`

	EmploymentType string `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract intern"`

	// Proration. DaysWorked nil means the full period was worked.
	DaysWorked *int `json:"days_worked,omitempty"`
	TotalDays  int  `json:"total_days"`
}

// NewSalaryStructure returns a structure with the defaults the engine
// expects: full period, full-time employment, all amounts zero.
func NewSalaryStructure(employeeID, employeeName string) *SalaryStructure {
	return &SalaryStructure{
		EmployeeID:     employeeID,
		EmployeeName:   employeeName,
		EmploymentType: EmploymentFullTime,
		TotalDays:      DefaultTotalDays,
	}
}

// TotalEarnings sums the eight earning components without rounding.
func (s *SalaryStructure) TotalEarnings() decimal.Decimal {
	return s.BasicSalary.
		Add(s.HousingAllowance).
		Add(s.TransportAllowance).
		Add(s.MealAllowance).
		Add(s.UtilityAllowance).
		Add(s.OtherAllowances).
		Add(s.Bonus).
		Add(s.Overtime)
}

// PensionableEarnings sums the components pension is levied on.
// PenCom: basic + housing + transport only.
func (s *SalaryStructure) PensionableEarnings() decimal.Decimal {
	return s.BasicSalary.
		Add(s.HousingAllowance).
		Add(s.TransportAllowance)
}

// MonetaryFields returns every money field with its JSON name, for
// validation and overflow checks.
func (s *SalaryStructure) MonetaryFields() []struct {
	Name   string
	Amount decimal.Decimal
} {
	return []struct {
		Name   string
		Amount decimal.Decimal
	}{
		{"basic_salary", s.BasicSalary},
		{"housing_allowance", s.HousingAllowance},
		{"transport_allowance", s.TransportAllowance},
		{"meal_allowance", s.MealAllowance},
		{"utility_allowance", s.UtilityAllowance},
		{"other_allowances", s.OtherAllowances},
		{"bonus", s.Bonus},
		{"overtime", s.Overtime},
		{"loan_repayment", s.LoanRepayment},
		{"other_deductions", s.OtherDeductions},
	}
}
