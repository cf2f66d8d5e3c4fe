package finance

import (
	"math"
	"testing"
)

func TestCalculateFinancialsEndToEnd(t *testing.T) {
	snapshot := Snapshot{
		Business: BusinessFinancials{
			Revenue:      Revenue{Ecommerce: 44000, Wholesale: 176000},
			COGS:         150000,
			Selling:      32800,
			Marketing:    16400,
			CoreOverhead: 24600,
		},
		Loan: LoanDetails{
			IsBusinessPurchase:   true,
			PurchasePrice:        500000,
			DownPayment:          100000,
			ThirdPartyInvestment: 50000,
			InterestRate:         5.5,
			LoanTerm:             10,
		},
		CashFlow: CashFlowTotals{Operating: 26800, Investing: -35000, Financing: 313000},
	}

	fin := CalculateFinancials(snapshot)

	if fin.NetRevenue != 220000 {
		t.Errorf("NetRevenue = %v, expected 220000", fin.NetRevenue)
	}
	if fin.GrossProfit != 70000 {
		t.Errorf("GrossProfit = %v, expected 70000", fin.GrossProfit)
	}
	if fin.OperatingIncome != -3800 {
		t.Errorf("OperatingIncome = %v, expected -3800", fin.OperatingIncome)
	}
	if fin.LoanAmount != 350000 {
		t.Errorf("LoanAmount = %v, expected 350000", fin.LoanAmount)
	}
	if math.Abs(fin.MonthlyPayment-3798.42) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, expected 3798.42", fin.MonthlyPayment)
	}
	if fin.NetCashFlow != 304800 {
		t.Errorf("NetCashFlow = %v, expected 304800", fin.NetCashFlow)
	}
}

func TestCalculateFinancialsEmptySnapshot(t *testing.T) {
	fin := CalculateFinancials(Snapshot{})

	// Everything degenerates to zero without errors or NaN.
	values := map[string]float64{
		"NetRevenue":       fin.NetRevenue,
		"GrossMargin":      fin.GrossMargin,
		"OperatingMargin":  fin.OperatingMargin,
		"LoanAmount":       fin.LoanAmount,
		"MonthlyPayment":   fin.MonthlyPayment,
		"TotalInterest":    fin.TotalInterest,
		"TotalPaid":        fin.TotalPaid,
		"NumberOfPayments": fin.NumberOfPayments,
		"NetCashFlow":      fin.NetCashFlow,
	}
	for field, v := range values {
		if v != 0 {
			t.Errorf("%s = %v, expected 0", field, v)
		}
	}
}
