package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stevenkilzer/calc/pkg/constants"
	"github.com/stevenkilzer/calc/pkg/finance"
)

const testConfig = `
logging:
  level: debug
  format: console
output:
  format: csv
projection:
  horizonMonths: 180
projects:
  - name: Main Street Bakery
    startDate: 2026-01
    business:
      revenue:
        ecommerce: 44000
        wholesale: 176000
      cogs: 150000
      selling: 32800
      marketing: 16400
      coreOverhead: 24600
    loan:
      isBusinessPurchase: true
      purchasePrice: 500000
      downPayment: 100000
      thirdPartyInvestment: 50000
      interestRate: 5.5
      loanTerm: 10
    cashFlow:
      operatingActivities:
        netIncome: 20800
        depreciation: 15000
      investingActivities:
        capitalExpenditures: -30000
      financingActivities:
        debtIssuance: 350000
`

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeTestConfig(t, testConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
	if conf.HorizonMonths() != 180 {
		t.Errorf("HorizonMonths() = %d, expected 180", conf.HorizonMonths())
	}

	if len(conf.Projects) != 1 {
		t.Fatalf("got %d projects, expected 1", len(conf.Projects))
	}
	project := conf.Projects[0]
	if project.Name != "Main Street Bakery" {
		t.Errorf("Name = %q, expected Main Street Bakery", project.Name)
	}
	if project.Business.Revenue.Wholesale != 176000 {
		t.Errorf("Revenue.Wholesale = %v, expected 176000", project.Business.Revenue.Wholesale)
	}
	if project.Business.CoreOverhead != 24600 {
		t.Errorf("CoreOverhead = %v, expected 24600", project.Business.CoreOverhead)
	}
	if !project.Loan.IsBusinessPurchase {
		t.Error("IsBusinessPurchase = false, expected true")
	}
	if project.Loan.LoanTerm != 10 {
		t.Errorf("LoanTerm = %v, expected 10", project.Loan.LoanTerm)
	}
	if project.CashFlow.OperatingActivities["depreciation"] != 15000 {
		t.Errorf("operating depreciation = %v, expected 15000", project.CashFlow.OperatingActivities["depreciation"])
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestProjectConfigData(t *testing.T) {
	conf, err := LoadConfiguration(writeTestConfig(t, testConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	data := conf.Projects[0].Data()
	if data.StartDate != "2026-01" {
		t.Errorf("StartDate = %q, expected 2026-01", data.StartDate)
	}

	snapshot := data.Snapshot()
	if snapshot.CashFlow.Operating != 35800 {
		t.Errorf("Operating total = %v, expected 35800", snapshot.CashFlow.Operating)
	}

	fin := finance.CalculateFinancials(snapshot)
	if fin.NetRevenue != 220000 {
		t.Errorf("NetRevenue = %v, expected 220000", fin.NetRevenue)
	}
	if fin.LoanAmount != 350000 {
		t.Errorf("LoanAmount = %v, expected 350000", fin.LoanAmount)
	}
}

func TestHorizonMonthsDefault(t *testing.T) {
	conf := &Configuration{}
	if conf.HorizonMonths() != constants.DefaultHorizonMonths {
		t.Errorf("HorizonMonths() = %d, expected default %d", conf.HorizonMonths(), constants.DefaultHorizonMonths)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		conf            Configuration
		expectedPhrases []string
	}{
		{
			name:            "No projects",
			conf:            Configuration{},
			expectedPhrases: []string{"no projects defined"},
		},
		{
			name: "Zero loan term with principal",
			conf: Configuration{Projects: []ProjectConfig{{
				Name: "Test",
				Loan: finance.LoanDetails{LoanAmount: 100000},
			}}},
			expectedPhrases: []string{"zero term"},
		},
		{
			name: "Zero interest rate",
			conf: Configuration{Projects: []ProjectConfig{{
				Name: "Test",
				Loan: finance.LoanDetails{LoanAmount: 100000, LoanTerm: 10},
			}}},
			expectedPhrases: []string{"zero interest rate"},
		},
		{
			name: "Purchase fields on direct loan",
			conf: Configuration{Projects: []ProjectConfig{{
				Name: "Test",
				Loan: finance.LoanDetails{LoanAmount: 100000, LoanTerm: 10, InterestRate: 5, PurchasePrice: 500000},
			}}},
			expectedPhrases: []string{"purchase fields on a direct loan"},
		},
		{
			name: "Negative derived principal",
			conf: Configuration{Projects: []ProjectConfig{{
				Name: "Test",
				Loan: finance.LoanDetails{IsBusinessPurchase: true, PurchasePrice: 100000, DownPayment: 150000, LoanTerm: 10, InterestRate: 5},
			}}},
			expectedPhrases: []string{"negative loan principal"},
		},
		{
			name: "Invalid start date",
			conf: Configuration{Projects: []ProjectConfig{{
				Name:      "Test",
				StartDate: "January 2026",
			}}},
			expectedPhrases: []string{"invalid startDate"},
		},
		{
			name: "Clean configuration",
			conf: Configuration{Projects: []ProjectConfig{{
				Name: "Test",
				Business: finance.BusinessFinancials{
					Revenue: finance.Revenue{Ecommerce: 1000},
				},
				Loan: finance.LoanDetails{LoanAmount: 100000, LoanTerm: 10, InterestRate: 5},
			}}},
			expectedPhrases: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if tt.expectedPhrases == nil && len(warnings) > 0 {
				t.Errorf("expected no warnings, got %v", warnings)
			}
			for _, phrase := range tt.expectedPhrases {
				found := false
				for _, warning := range warnings {
					if strings.Contains(warning, phrase) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected a warning containing %q, got %v", phrase, warnings)
				}
			}
		})
	}
}
