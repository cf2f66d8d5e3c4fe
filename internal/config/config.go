// Package config defines the data structures related to configuration and
// includes functions for loading and validating the project file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/stevenkilzer/calc/internal/store"
	"github.com/stevenkilzer/calc/pkg/constants"
	"github.com/stevenkilzer/calc/pkg/finance"
)

// Configuration holds all configuration for business-calc.
type Configuration struct {
	Projects   []ProjectConfig
	Projection ProjectionConfig `yaml:"projection,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// ProjectConfig describes one planning project in the configuration file.
// Missing numeric fields default to zero; the engine never defaults fields
// itself.
type ProjectConfig struct {
	Name      string
	StartDate string `yaml:"startDate,omitempty"` // YYYY-MM, optional
	Business  finance.BusinessFinancials
	Loan      finance.LoanDetails
	CashFlow  CashFlowConfig
}

// CashFlowConfig holds the per-category cash flow line items.
type CashFlowConfig struct {
	OperatingActivities map[string]float64 `yaml:"operatingActivities,omitempty"`
	InvestingActivities map[string]float64 `yaml:"investingActivities,omitempty"`
	FinancingActivities map[string]float64 `yaml:"financingActivities,omitempty"`
}

// ProjectionConfig holds projection options.
type ProjectionConfig struct {
	HorizonMonths int `yaml:"horizonMonths,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// HorizonMonths returns the configured projection horizon, falling back to
// the default when unset or nonsensical.
func (c *Configuration) HorizonMonths() int {
	if c.Projection.HorizonMonths > 0 {
		return c.Projection.HorizonMonths
	}
	return constants.DefaultHorizonMonths
}

// Data converts the project configuration into the stored input document.
func (p ProjectConfig) Data() store.ProjectData {
	return store.ProjectData{
		Business: p.Business,
		Loan:     p.Loan,
		CashFlow: store.CashFlowActivities{
			Operating: p.CashFlow.OperatingActivities,
			Investing: p.CashFlow.InvestingActivities,
			Financing: p.CashFlow.FinancingActivities,
		},
		StartDate: p.StartDate,
	}
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. Values the engine accepts (zero terms, negative
// amounts) warn rather than fail; they produce defined degenerate output.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Projects) == 0 {
		warnings = append(warnings, "no projects defined; nothing to calculate")
	}

	for i, project := range c.Projects {
		label := project.Name
		if label == "" {
			label = fmt.Sprintf("project %d", i+1)
			warnings = append(warnings, fmt.Sprintf("%s has no name", label))
		}

		if project.StartDate != "" {
			if _, err := time.Parse(constants.DateTimeLayout, project.StartDate); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s has an invalid startDate %q, expected YYYY-MM", label, project.StartDate))
			}
		}

		loan := project.Loan
		principal := loan.Terms().Principal.Principal()
		if loan.LoanTerm == 0 && principal != 0 {
			warnings = append(warnings, fmt.Sprintf("%s has a loan with a zero term; the monthly payment will be reported as not applicable", label))
		}
		if loan.InterestRate == 0 && principal != 0 && loan.LoanTerm != 0 {
			warnings = append(warnings, fmt.Sprintf("%s has a zero interest rate; the monthly payment will be reported as not applicable", label))
		}
		if loan.IsBusinessPurchase && loan.LoanAmount != 0 {
			warnings = append(warnings, fmt.Sprintf("%s sets loanAmount on a business purchase loan; the purchase structure takes precedence", label))
		}
		if !loan.IsBusinessPurchase && (loan.PurchasePrice != 0 || loan.DownPayment != 0 || loan.ThirdPartyInvestment != 0) {
			warnings = append(warnings, fmt.Sprintf("%s sets purchase fields on a direct loan; they are ignored", label))
		}
		if principal < 0 {
			warnings = append(warnings, fmt.Sprintf("%s derives a negative loan principal of %.2f", label, principal))
		}

		if project.Business.Revenue.Ecommerce < 0 || project.Business.Revenue.Wholesale < 0 {
			warnings = append(warnings, fmt.Sprintf("%s has negative revenue", label))
		}
	}

	if c.Projection.HorizonMonths < 0 {
		warnings = append(warnings, fmt.Sprintf("projection horizon %d is negative; using default of %d months",
			c.Projection.HorizonMonths, constants.DefaultHorizonMonths))
	}

	return warnings
}
