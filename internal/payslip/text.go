// Package payslip renders payroll results for people: a fixed-width text
// block for chat/CLI output and an A4 PDF for download. Rendering has no
// calculation logic; it assumes an already-complete result.
package payslip

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairapay/payroll-engine/internal/domain"
	"github.com/nairapay/payroll-engine/pkg/utils"
)

const (
	lineWidth  = 60
	labelWidth = 24
	dateLayout = "02 Jan 2006"
)

// Render produces the fixed-width text payslip, stamped with the current
// time in the footer.
func Render(result *domain.PayrollResult) string {
	return renderAt(result, time.Now())
}

func renderAt(result *domain.PayrollResult, generatedAt time.Time) string {
	rule := strings.Repeat("=", lineWidth)
	thinRule := "  " + strings.Repeat("─", lineWidth-2)

	lines := []string{
		rule,
		fmt.Sprintf("PAYSLIP - %s", result.EmployeeName),
		fmt.Sprintf("Employee ID: %s", result.EmployeeID),
		fmt.Sprintf("Period: %s - %s", result.PeriodStart.Format(dateLayout), result.PeriodEnd.Format(dateLayout)),
		rule,
		"",
		"EARNINGS:",
		row("Basic Salary:", result.BasicSalary),
		row("Housing Allowance:", result.HousingAllowance),
		row("Transport Allowance:", result.TransportAllowance),
		row("Meal Allowance:", result.MealAllowance),
		row("Utility Allowance:", result.UtilityAllowance),
		row("Other Allowances:", result.OtherAllowances),
		row("Bonus:", result.Bonus),
		row("Overtime:", result.Overtime),
		thinRule,
		row("GROSS SALARY:", result.GrossSalary),
		"",
		"DEDUCTIONS:",
		row("Pension (8%):", result.PensionEmployee),
		row("NHF (2.5%):", result.NHF),
		row("PAYE Tax:", result.PAYE),
		row("Loan Repayment:", result.LoanRepayment),
		row("Other Deductions:", result.OtherDeductions),
		thinRule,
		row("TOTAL DEDUCTIONS:", result.TotalDeductions),
		"",
		rule,
		row("NET SALARY:", result.NetSalary),
		rule,
		"",
		"EMPLOYER CONTRIBUTIONS:",
		row("Pension (10%):", result.PensionEmployer),
		"",
		"TAX CALCULATION SUMMARY:",
		row("Annual Gross Income:", result.AnnualGross),
		row("Rent Relief (20%):", result.RentRelief),
		row("Annual Taxable Income:", result.TaxableIncome),
		row("Annual PAYE Tax:", result.AnnualPAYE),
		"",
	}

	if result.IsProrated {
		lines = append(lines, "* Salary prorated for partial month")
	}

	if len(result.CalculationNotes) > 0 {
		lines = append(lines, "", "NOTES:")
		for _, note := range result.CalculationNotes {
			lines = append(lines, "  • "+note)
		}
	}

	lines = append(lines,
		"",
		rule,
		fmt.Sprintf("Generated: %s", generatedAt.Format("02 Jan 2006 15:04")),
		rule,
	)

	return strings.Join(lines, "\n")
}

func row(label string, amount decimal.Decimal) string {
	return fmt.Sprintf("  %-*s%s", labelWidth, label, utils.FormatMoney(amount))
}
