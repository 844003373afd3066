package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/nairapay/payroll-engine/internal/domain"
)

// Config holds all configuration for the payroll engine and its CLI
type Config struct {
	Statutory StatutoryConfig `mapstructure:",squash"`
	Tax       TaxConfig       `mapstructure:",squash"`
	Periods   PeriodConfig    `mapstructure:",squash"`
	Output    OutputConfig    `mapstructure:",squash"`
	Logging   LoggingConfig   `mapstructure:",squash"`
}

// StatutoryConfig carries statutory rates as strings so they can be
// overridden from the environment without float round-trips.
type StatutoryConfig struct {
	PensionEmployeeRate string `mapstructure:"PENSION_EMPLOYEE_RATE"`
	PensionEmployerRate string `mapstructure:"PENSION_EMPLOYER_RATE"`
	NHFRate             string `mapstructure:"NHF_RATE"`
	NHFMinimumBasic     string `mapstructure:"NHF_MINIMUM_BASIC"`
	RentReliefRate      string `mapstructure:"RENT_RELIEF_RATE"`
	RentReliefCap       string `mapstructure:"RENT_RELIEF_CAP"`
	NSITFRate           string `mapstructure:"NSITF_RATE"`
	ITFRate             string `mapstructure:"ITF_RATE"`
	MaxMonthlyAmount    string `mapstructure:"MAX_MONTHLY_AMOUNT"`
}

type TaxConfig struct {
	BracketVersion string `mapstructure:"TAX_BRACKET_VERSION"`
	Brackets       string `mapstructure:"TAX_BRACKETS"`
}

type PeriodConfig struct {
	DefaultTotalDays int `mapstructure:"DEFAULT_TOTAL_DAYS"`
}

type OutputConfig struct {
	PayslipDir string `mapstructure:"PAYSLIP_DIR"`
}

type LoggingConfig struct {
	Level string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	defaults := domain.DefaultStatutoryRules()

	// Set defaults
	viper.SetDefault("PENSION_EMPLOYEE_RATE", defaults.PensionEmployeeRate.String())
	viper.SetDefault("PENSION_EMPLOYER_RATE", defaults.PensionEmployerRate.String())
	viper.SetDefault("NHF_RATE", defaults.NHFRate.String())
	viper.SetDefault("NHF_MINIMUM_BASIC", defaults.NHFMinimumBasic.String())
	viper.SetDefault("RENT_RELIEF_RATE", defaults.RentReliefRate.String())
	viper.SetDefault("RENT_RELIEF_CAP", defaults.RentReliefCap.String())
	viper.SetDefault("NSITF_RATE", defaults.NSITFRate.String())
	viper.SetDefault("ITF_RATE", defaults.ITFRate.String())
	viper.SetDefault("MAX_MONTHLY_AMOUNT", defaults.MaxMonthlyAmount.String())
	viper.SetDefault("TAX_BRACKET_VERSION", domain.DefaultBracketTable().Version)
	viper.SetDefault("TAX_BRACKETS", BracketSpec(domain.DefaultBracketTable()))
	viper.SetDefault("DEFAULT_TOTAL_DAYS", domain.DefaultTotalDays)
	viper.SetDefault("PAYSLIP_DIR", "payslips")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	rateFields := map[string]string{
		"PENSION_EMPLOYEE_RATE": c.Statutory.PensionEmployeeRate,
		"PENSION_EMPLOYER_RATE": c.Statutory.PensionEmployerRate,
		"NHF_RATE":              c.Statutory.NHFRate,
		"NHF_MINIMUM_BASIC":     c.Statutory.NHFMinimumBasic,
		"RENT_RELIEF_RATE":      c.Statutory.RentReliefRate,
		"RENT_RELIEF_CAP":       c.Statutory.RentReliefCap,
		"NSITF_RATE":            c.Statutory.NSITFRate,
		"ITF_RATE":              c.Statutory.ITFRate,
		"MAX_MONTHLY_AMOUNT":    c.Statutory.MaxMonthlyAmount,
	}
	for name, value := range rateFields {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("%s must be a valid decimal: %w", name, err)
		}
		if d.IsNegative() {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	if c.Periods.DefaultTotalDays <= 0 {
		return fmt.Errorf("DEFAULT_TOTAL_DAYS must be greater than 0")
	}

	if _, err := domain.ParseBracketTable(c.Tax.BracketVersion, c.Tax.Brackets); err != nil {
		return fmt.Errorf("TAX_BRACKETS is invalid: %w", err)
	}

	return nil
}

// StatutoryRules materializes the configured rates as decimals. Call after
// Validate: parse errors cannot occur on a validated config.
func (c *Config) StatutoryRules() domain.StatutoryRules {
	return domain.StatutoryRules{
		PensionEmployeeRate: decimal.RequireFromString(c.Statutory.PensionEmployeeRate),
		PensionEmployerRate: decimal.RequireFromString(c.Statutory.PensionEmployerRate),
		NHFRate:             decimal.RequireFromString(c.Statutory.NHFRate),
		NHFMinimumBasic:     decimal.RequireFromString(c.Statutory.NHFMinimumBasic),
		RentReliefRate:      decimal.RequireFromString(c.Statutory.RentReliefRate),
		RentReliefCap:       decimal.RequireFromString(c.Statutory.RentReliefCap),
		NSITFRate:           decimal.RequireFromString(c.Statutory.NSITFRate),
		ITFRate:             decimal.RequireFromString(c.Statutory.ITFRate),
		MaxMonthlyAmount:    decimal.RequireFromString(c.Statutory.MaxMonthlyAmount),
	}
}

// BracketTable materializes the configured tax table. Call after Validate.
func (c *Config) BracketTable() domain.BracketTable {
	table, err := domain.ParseBracketTable(c.Tax.BracketVersion, c.Tax.Brackets)
	if err != nil {
		panic(err)
	}
	return table
}

// BracketSpec renders a table back into the compact width:rate string form
// used for configuration.
func BracketSpec(table domain.BracketTable) string {
	spec := ""
	for i, b := range table.Brackets {
		if i > 0 {
			spec += ","
		}
		spec += b.Width.String() + ":" + b.Rate.String()
	}
	return spec
}
