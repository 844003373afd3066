package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollResult is the fully itemized outcome of one payroll calculation.
// It is a value object: created per call, never mutated by the engine after
// return. Every monetary field is finalized to 2 decimal places except
// where noted.
type PayrollResult struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`

	// Earnings (as supplied, rounded; not prorated individually)
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	UtilityAllowance   decimal.Decimal `json:"utility_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	Bonus              decimal.Decimal `json:"bonus"`
	Overtime           decimal.Decimal `json:"overtime"`

	// GrossSalary is the payable monthly gross, prorated when applicable.
	GrossSalary decimal.Decimal `json:"gross_salary"`

	// Statutory deductions, monthly
	PensionEmployee decimal.Decimal `json:"pension_employee"`
	PensionEmployer decimal.Decimal `json:"pension_employer"` // informational, not deducted
	NHF             decimal.Decimal `json:"nhf"`
	PAYE            decimal.Decimal `json:"paye"`

	// Other deductions, passed through as supplied
	LoanRepayment   decimal.Decimal `json:"loan_repayment"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	// NetSalary = GrossSalary - TotalDeductions, exact, may be negative.
	NetSalary decimal.Decimal `json:"net_salary"`

	// Tax calculation trace (annual figures)
	AnnualGross   decimal.Decimal `json:"annual_gross"`
	RentRelief    decimal.Decimal `json:"rent_relief"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	AnnualPAYE    decimal.Decimal `json:"annual_paye"`

	IsProrated       bool     `json:"is_prorated"`
	CalculationNotes []string `json:"calculation_notes"`
}
