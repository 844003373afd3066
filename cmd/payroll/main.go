package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nairapay/payroll-engine/internal/config"
	"github.com/nairapay/payroll-engine/internal/domain"
	"github.com/nairapay/payroll-engine/internal/payslip"
	"github.com/nairapay/payroll-engine/internal/service"
	"github.com/nairapay/payroll-engine/pkg/utils"
)

const dateLayout = "2006-01-02"

var (
	cfg    *config.Config
	engine *service.Engine

	flagPeriodStart string
	flagPeriodEnd   string
	flagInput       string
	flagFormat      string
	flagPDF         bool
)

var rootCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Nigerian payroll calculation engine",
	Long: `Deterministic gross-to-net payroll calculation under Nigerian statutory
rules: progressive PAYE, pension, NHF, rent relief and partial-period
proration. Rates and the bracket table can be overridden via environment
variables or a .env file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		engine, err = service.NewEngine(cfg.StatutoryRules(), cfg.BracketTable())
		return err
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate payroll for a salary structure JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ss, err := loadSalaryStructure(flagInput)
		if err != nil {
			return err
		}

		periodStart, periodEnd, err := resolvePeriod()
		if err != nil {
			return err
		}

		result, err := engine.CalculatePayroll(ss, periodStart, periodEnd)
		if err != nil {
			return err
		}

		switch flagFormat {
		case "json":
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
		case "text":
			fmt.Println(payslip.Render(result))
		default:
			return fmt.Errorf("unknown output format %q", flagFormat)
		}

		if flagPDF {
			path, err := writePDF(result)
			if err != nil {
				return err
			}
			log.Printf("Payslip PDF written to %s", path)
		}

		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in example payroll batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.New()
		log.Printf("Running demo payroll batch %s (brackets %s)", runID, engine.Brackets().Version)

		periodStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		periodEnd := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

		fullTime := domain.NewSalaryStructure("EMP001", "Ngozi Adeyemi")
		fullTime.BasicSalary = decimal.NewFromInt(200000)
		fullTime.HousingAllowance = decimal.NewFromInt(100000)
		fullTime.TransportAllowance = decimal.NewFromInt(50000)
		fullTime.OtherAllowances = decimal.NewFromInt(50000)

		daysWorked := 17
		midMonth := domain.NewSalaryStructure("EMP002", "Chidi Okafor")
		midMonth.BasicSalary = decimal.NewFromInt(150000)
		midMonth.HousingAllowance = decimal.NewFromInt(75000)
		midMonth.TransportAllowance = decimal.NewFromInt(25000)
		midMonth.DaysWorked = &daysWorked
		midMonth.TotalDays = 31

		results := make([]*domain.PayrollResult, 0, 2)
		for _, ss := range []*domain.SalaryStructure{fullTime, midMonth} {
			result, err := engine.CalculatePayroll(ss, periodStart, periodEnd)
			if err != nil {
				return err
			}
			results = append(results, result)

			fmt.Println(payslip.Render(result))
			fmt.Println()

			if flagPDF {
				path, err := writePDF(result)
				if err != nil {
					return err
				}
				log.Printf("Payslip PDF written to %s", path)
			}
		}

		printSummary(results)
		return nil
	},
}

func printSummary(results []*domain.PayrollResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Employee", "Gross", "PAYE", "Total Deductions", "Net"})
	for _, r := range results {
		t.AppendRow(table.Row{
			fmt.Sprintf("%s (%s)", r.EmployeeName, r.EmployeeID),
			utils.FormatMoney(r.GrossSalary),
			utils.FormatMoney(r.PAYE),
			utils.FormatMoney(r.TotalDeductions),
			utils.FormatMoney(r.NetSalary),
		})
	}
	t.Render()
}

func loadSalaryStructure(path string) (*domain.SalaryStructure, error) {
	if path == "" {
		return nil, fmt.Errorf("--input is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading salary structure: %w", err)
	}

	var ss domain.SalaryStructure
	if err := json.Unmarshal(data, &ss); err != nil {
		return nil, fmt.Errorf("parsing salary structure: %w", err)
	}

	if ss.TotalDays == 0 {
		ss.TotalDays = cfg.Periods.DefaultTotalDays
	}
	if ss.EmploymentType == "" {
		ss.EmploymentType = domain.EmploymentFullTime
	}

	return &ss, nil
}

func resolvePeriod() (time.Time, time.Time, error) {
	now := time.Now().UTC()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := now.Truncate(24 * time.Hour)

	if flagPeriodStart != "" {
		parsed, err := time.Parse(dateLayout, flagPeriodStart)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --period-start: %w", err)
		}
		periodStart = parsed
	}
	if flagPeriodEnd != "" {
		parsed, err := time.Parse(dateLayout, flagPeriodEnd)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --period-end: %w", err)
		}
		periodEnd = parsed
	}

	return periodStart, periodEnd, nil
}

func writePDF(result *domain.PayrollResult) (string, error) {
	if err := os.MkdirAll(cfg.Output.PayslipDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s.pdf", result.EmployeeID, result.PeriodStart.Format(dateLayout))
	path := filepath.Join(cfg.Output.PayslipDir, name)
	if err := payslip.WritePDF(result, path); err != nil {
		return "", err
	}
	return path, nil
}

func main() {
	calculateCmd.Flags().StringVar(&flagInput, "input", "", "path to a salary structure JSON file")
	calculateCmd.Flags().StringVar(&flagPeriodStart, "period-start", "", "period start date (YYYY-MM-DD, default: first of this month)")
	calculateCmd.Flags().StringVar(&flagPeriodEnd, "period-end", "", "period end date (YYYY-MM-DD, default: today)")
	calculateCmd.Flags().StringVar(&flagFormat, "format", "text", "output format: text or json")
	calculateCmd.Flags().BoolVar(&flagPDF, "pdf", false, "also write a PDF payslip")
	demoCmd.Flags().BoolVar(&flagPDF, "pdf", false, "also write PDF payslips")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
