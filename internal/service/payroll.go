package service

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/nairapay/payroll-engine/internal/domain"
	customError "github.com/nairapay/payroll-engine/pkg/errors"
	"github.com/nairapay/payroll-engine/pkg/utils"
)

var twelve = decimal.NewFromInt(12)

// Engine performs gross-to-net payroll calculations under a fixed statutory
// rule set. It is stateless and safe for concurrent use: every calculation
// is a pure function of its inputs.
type Engine struct {
	rules    domain.StatutoryRules
	brackets domain.BracketTable
	validate *validator.Validate
}

// NewEngine builds an engine from an explicit rule set and bracket table.
func NewEngine(rules domain.StatutoryRules, brackets domain.BracketTable) (*Engine, error) {
	if err := brackets.Validate(); err != nil {
		return nil, err
	}

	v := validator.New()
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})

	return &Engine{
		rules:    rules,
		brackets: brackets,
		validate: v,
	}, nil
}

// NewDefaultEngine builds an engine with the built-in rule set and the
// 2026 PAYE bracket table.
func NewDefaultEngine() *Engine {
	engine, err := NewEngine(domain.DefaultStatutoryRules(), domain.DefaultBracketTable())
	if err != nil {
		// the built-in table is validated by tests; this cannot happen
		panic(err)
	}
	return engine
}

// Rules returns the statutory rule set the engine was built with.
func (e *Engine) Rules() domain.StatutoryRules {
	return e.rules
}

// Brackets returns the bracket table the engine was built with.
func (e *Engine) Brackets() domain.BracketTable {
	return e.brackets
}

// decimalAsFloat lets the standard numeric validator tags (gte, gt, lte)
// apply to decimal fields. Precision loss is acceptable here: tags are only
// used for sign checks, the calculation itself never leaves decimal.
func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// CalculatePayroll computes a complete, itemized payroll result for one
// employee and one pay period. The period dates label the result; they do
// not drive any arithmetic. Proration is driven by DaysWorked/TotalDays.
func (e *Engine) CalculatePayroll(ss *domain.SalaryStructure, periodStart, periodEnd time.Time) (*domain.PayrollResult, error) {
	if err := e.validateInput(ss); err != nil {
		return nil, err
	}

	notes := []string{}

	// 1. Proration factor, computed once and threaded through every step
	isProrated := ss.DaysWorked != nil && *ss.DaysWorked < ss.TotalDays
	factor := decimal.NewFromInt(1)
	if isProrated {
		factor = decimal.NewFromInt(int64(*ss.DaysWorked)).Div(decimal.NewFromInt(int64(ss.TotalDays)))
		notes = append(notes, fmt.Sprintf("Prorated for %d/%d days", *ss.DaysWorked, ss.TotalDays))
	}

	// 2. Gross salary: payable gross is prorated, the annual tax base is
	// not. Annualization always uses the full monthly sum so a short month
	// keeps its full-salary tax bracket.
	fullMonthlyGross := utils.RoundMoney(ss.TotalEarnings())
	grossMonthly := fullMonthlyGross
	if isProrated {
		grossMonthly = utils.RoundMoney(ss.TotalEarnings().Mul(factor))
	}
	grossAnnual := fullMonthlyGross.Mul(twelve)

	// 3. Pension on basic + housing + transport, prorated with the gross
	pensionableIncome := utils.RoundMoney(ss.PensionableEarnings().Mul(factor))
	pensionEmployee := utils.RoundMoney(pensionableIncome.Mul(e.rules.PensionEmployeeRate))
	pensionEmployer := utils.RoundMoney(pensionableIncome.Mul(e.rules.PensionEmployerRate))
	pensionEmployeeAnnual := pensionEmployee.Mul(twelve)

	// 4. NHF on basic only. The threshold is checked against the prorated
	// basic, so a short working period can make NHF inapplicable on its
	// own. That is the statutory reading, not an accident.
	basicForNHF := ss.BasicSalary.Mul(factor)
	nhfMonthly := decimal.Zero
	if basicForNHF.LessThan(e.rules.NHFMinimumBasic) {
		notes = append(notes, fmt.Sprintf("NHF not applicable (basic < ₦%s)", e.rules.NHFMinimumBasic.String()))
	} else {
		nhfMonthly = utils.RoundMoney(basicForNHF.Mul(e.rules.NHFRate))
	}
	nhfAnnual := nhfMonthly.Mul(twelve)

	// 5. Rent relief: 20% of annual gross, capped
	rentRelief := decimal.Min(grossAnnual.Mul(e.rules.RentReliefRate), e.rules.RentReliefCap)

	// 6. Annual taxable income, floored at zero
	taxableAnnual := grossAnnual.Sub(pensionEmployeeAnnual).Sub(nhfAnnual).Sub(rentRelief)
	if taxableAnnual.IsNegative() {
		taxableAnnual = decimal.Zero
		notes = append(notes, "Taxable income is zero after deductions")
	}

	// 7. PAYE: annual liability from the full-salary base, then scaled to
	// the month, then scaled again for a partial period
	payeAnnual := CalculateAnnualPAYE(taxableAnnual, e.brackets)
	payeMonthly := utils.RoundMoney(payeAnnual.Div(twelve))
	if isProrated {
		payeMonthly = utils.RoundMoney(payeMonthly.Mul(factor))
	}
	if payeMonthly.IsZero() {
		notes = append(notes, "No PAYE tax (below threshold or fully relieved)")
	}

	// 8. Aggregate deductions; loan and other deductions pass through
	// unprorated exactly as supplied
	totalDeductions := pensionEmployee.
		Add(nhfMonthly).
		Add(payeMonthly).
		Add(ss.LoanRepayment).
		Add(ss.OtherDeductions)

	// 9. Net pay. No rounding here and no clamping: deductions exceeding
	// gross surface as a negative net for the caller to deal with.
	netSalary := grossMonthly.Sub(totalDeductions)

	return &domain.PayrollResult{
		EmployeeID:   ss.EmployeeID,
		EmployeeName: ss.EmployeeName,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,

		BasicSalary:        utils.RoundMoney(ss.BasicSalary),
		HousingAllowance:   utils.RoundMoney(ss.HousingAllowance),
		TransportAllowance: utils.RoundMoney(ss.TransportAllowance),
		MealAllowance:      utils.RoundMoney(ss.MealAllowance),
		UtilityAllowance:   utils.RoundMoney(ss.UtilityAllowance),
		OtherAllowances:    utils.RoundMoney(ss.OtherAllowances),
		Bonus:              utils.RoundMoney(ss.Bonus),
		Overtime:           utils.RoundMoney(ss.Overtime),
		GrossSalary:        grossMonthly,

		PensionEmployee: pensionEmployee,
		PensionEmployer: pensionEmployer,
		NHF:             nhfMonthly,
		PAYE:            payeMonthly,

		LoanRepayment:   ss.LoanRepayment,
		OtherDeductions: ss.OtherDeductions,
		TotalDeductions: totalDeductions,

		NetSalary: netSalary,

		AnnualGross:   grossAnnual,
		RentRelief:    rentRelief,
		TaxableIncome: taxableAnnual,
		AnnualPAYE:    payeAnnual,

		IsProrated:       isProrated,
		CalculationNotes: notes,
	}, nil
}

// validateInput rejects malformed structures before any arithmetic runs:
// a calculation either completes in full or fails outright.
func (e *Engine) validateInput(ss *domain.SalaryStructure) error {
	if ss == nil {
		return customError.WrapInvalidInput("salary structure is required")
	}

	for _, f := range ss.MonetaryFields() {
		if f.Amount.IsNegative() {
			return customError.WrapNegativeAmount(f.Name)
		}
		if e.rules.MaxMonthlyAmount.IsPositive() && f.Amount.GreaterThan(e.rules.MaxMonthlyAmount) {
			return customError.WrapArithmeticOverflow(f.Name, f.Amount.String())
		}
	}

	if ss.TotalDays <= 0 {
		return customError.WrapInvalidInput(fmt.Sprintf("total_days must be positive, got %d", ss.TotalDays))
	}
	if ss.DaysWorked != nil && (*ss.DaysWorked <= 0 || *ss.DaysWorked > ss.TotalDays) {
		return customError.WrapInvalidProration(*ss.DaysWorked, ss.TotalDays)
	}

	if err := e.validate.Struct(ss); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return customError.WrapInvalidInput(fmt.Sprintf("field %s failed %q validation", fe.Field(), fe.Tag()))
		}
		return customError.WrapInvalidInput(err.Error())
	}

	return nil
}
