package payslip

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/nairapay/payroll-engine/internal/domain"
	"github.com/nairapay/payroll-engine/pkg/utils"
)

// WritePDF writes an A4 payslip to filePath. Amounts carry an explicit
// "NGN" code because the built-in PDF fonts have no ₦ glyph.
func WritePDF(result *domain.PayrollResult, filePath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", result.EmployeeName, result.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s",
		result.PeriodStart.Format("2006-01-02"), result.PeriodEnd.Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	moneyRow := func(label string, amount decimal.Decimal) {
		pdf.Cell(90, 6, label)
		pdf.CellFormat(60, 6, "NGN "+utils.FormatAmount(amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	section("Earnings")
	moneyRow("Basic Salary", result.BasicSalary)
	moneyRow("Housing Allowance", result.HousingAllowance)
	moneyRow("Transport Allowance", result.TransportAllowance)
	moneyRow("Meal Allowance", result.MealAllowance)
	moneyRow("Utility Allowance", result.UtilityAllowance)
	moneyRow("Other Allowances", result.OtherAllowances)
	moneyRow("Bonus", result.Bonus)
	moneyRow("Overtime", result.Overtime)
	moneyRow("Gross Salary", result.GrossSalary)
	pdf.Ln(4)

	section("Deductions")
	moneyRow("Pension (8%)", result.PensionEmployee)
	moneyRow("NHF (2.5%)", result.NHF)
	moneyRow("PAYE Tax", result.PAYE)
	moneyRow("Loan Repayment", result.LoanRepayment)
	moneyRow("Other Deductions", result.OtherDeductions)
	moneyRow("Total Deductions", result.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	moneyRow("NET SALARY", result.NetSalary)
	pdf.Ln(4)

	section("Employer Contributions")
	moneyRow("Pension (10%)", result.PensionEmployer)
	pdf.Ln(4)

	section("Tax Calculation Summary")
	moneyRow("Annual Gross Income", result.AnnualGross)
	moneyRow("Rent Relief (20%)", result.RentRelief)
	moneyRow("Annual Taxable Income", result.TaxableIncome)
	moneyRow("Annual PAYE Tax", result.AnnualPAYE)

	if result.IsProrated || len(result.CalculationNotes) > 0 {
		pdf.Ln(4)
		section("Notes")
		if result.IsProrated {
			pdf.Cell(0, 6, "Salary prorated for partial month")
			pdf.Ln(6)
		}
		for _, note := range result.CalculationNotes {
			// note strings use the ₦ symbol, which the core fonts lack
			pdf.Cell(0, 6, strings.ReplaceAll(note, "₦", "NGN "))
			pdf.Ln(6)
		}
	}

	return pdf.OutputFileAndClose(filePath)
}
