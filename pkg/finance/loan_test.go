package finance

import (
	"math"
	"testing"
)

func TestComputeLoanReferenceAnnuity(t *testing.T) {
	figures := ComputeLoan(LoanTerms{
		Principal:    DirectLoan{Amount: 350000},
		InterestRate: 5.5,
		TermYears:    10,
	})

	if math.Abs(figures.MonthlyInterestRate-0.0045833333333333334) > 1e-12 {
		t.Errorf("MonthlyInterestRate = %v, expected 5.5/12/100", figures.MonthlyInterestRate)
	}
	if figures.NumberOfPayments != 120 {
		t.Errorf("NumberOfPayments = %v, expected 120", figures.NumberOfPayments)
	}

	// Closed-form annuity value for the same inputs.
	r := 5.5 / 12 / 100
	n := 120.0
	expected := 350000 * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)
	if math.Abs(figures.MonthlyPayment-expected)/expected > 1e-6 {
		t.Errorf("MonthlyPayment = %v, expected closed-form %v", figures.MonthlyPayment, expected)
	}
	if math.Abs(figures.MonthlyPayment-3798.42) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, expected 3798.42", figures.MonthlyPayment)
	}

	if math.Abs(figures.TotalPaid-figures.MonthlyPayment*120) > 1e-6 {
		t.Errorf("TotalPaid = %v, expected payment*n", figures.TotalPaid)
	}
	if math.Abs(figures.TotalInterest-(figures.TotalPaid-350000)) > 1e-6 {
		t.Errorf("TotalInterest = %v, expected totalPaid-principal", figures.TotalInterest)
	}
}

func TestComputeLoanPrincipalDerivation(t *testing.T) {
	tests := []struct {
		name      string
		principal LoanPrincipal
		expected  float64
	}{
		{
			name: "Purchase structure",
			principal: PurchaseLoan{
				PurchasePrice:        500000,
				DownPayment:          100000,
				ThirdPartyInvestment: 50000,
			},
			expected: 350000,
		},
		{
			name:      "Direct loan",
			principal: DirectLoan{Amount: 275000},
			expected:  275000,
		},
		{
			name: "Purchase fully covered by down payment and investors",
			principal: PurchaseLoan{
				PurchasePrice:        100000,
				DownPayment:          60000,
				ThirdPartyInvestment: 40000,
			},
			expected: 0,
		},
		{
			name: "Overfunded purchase yields negative principal",
			principal: PurchaseLoan{
				PurchasePrice:        100000,
				DownPayment:          150000,
				ThirdPartyInvestment: 0,
			},
			expected: -50000,
		},
		{
			name:      "Nil principal treated as zero",
			principal: nil,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			figures := ComputeLoan(LoanTerms{Principal: tt.principal, InterestRate: 5.0, TermYears: 10})
			if figures.LoanAmount != tt.expected {
				t.Errorf("LoanAmount = %v, expected %v", figures.LoanAmount, tt.expected)
			}
		})
	}
}

func TestComputeLoanDegenerateInputs(t *testing.T) {
	tests := []struct {
		name  string
		terms LoanTerms
	}{
		{
			name:  "Zero rate and zero term",
			terms: LoanTerms{Principal: DirectLoan{Amount: 0}, InterestRate: 0, TermYears: 0},
		},
		{
			name:  "Zero term with nonzero rate",
			terms: LoanTerms{Principal: DirectLoan{Amount: 0}, InterestRate: 5.5, TermYears: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			figures := ComputeLoan(tt.terms)
			if figures.MonthlyPayment != 0 {
				t.Errorf("MonthlyPayment = %v, expected 0", figures.MonthlyPayment)
			}
			if figures.TotalInterest != 0 {
				t.Errorf("TotalInterest = %v, expected 0", figures.TotalInterest)
			}
			if figures.TotalPaid != 0 {
				t.Errorf("TotalPaid = %v, expected 0", figures.TotalPaid)
			}
		})
	}
}

func TestComputeLoanZeroRateReportsZeroPayment(t *testing.T) {
	// A zero rate drives the annuity denominator to zero; the policy is a
	// zero payment with totals propagated from it, never NaN.
	figures := ComputeLoan(LoanTerms{Principal: DirectLoan{Amount: 120000}, InterestRate: 0, TermYears: 10})

	if figures.MonthlyPayment != 0 {
		t.Errorf("MonthlyPayment = %v, expected 0", figures.MonthlyPayment)
	}
	if figures.TotalPaid != 0 {
		t.Errorf("TotalPaid = %v, expected 0", figures.TotalPaid)
	}
	if figures.TotalInterest != -120000 {
		t.Errorf("TotalInterest = %v, expected -120000", figures.TotalInterest)
	}
	for _, v := range []float64{figures.MonthlyPayment, figures.TotalInterest, figures.TotalPaid} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("non-finite value %v leaked into loan figures", v)
		}
	}
}

func TestComputeLoanNegativePrincipalAccepted(t *testing.T) {
	figures := ComputeLoan(LoanTerms{Principal: DirectLoan{Amount: -50000}, InterestRate: 4.0, TermYears: 5})
	if figures.MonthlyPayment >= 0 {
		t.Errorf("MonthlyPayment = %v, expected a negative payment for negative principal", figures.MonthlyPayment)
	}
	if math.IsNaN(figures.MonthlyPayment) {
		t.Error("MonthlyPayment is NaN, expected a finite value")
	}
}

func TestComputeLoanIdempotent(t *testing.T) {
	terms := LoanTerms{
		Principal:    PurchaseLoan{PurchasePrice: 500000, DownPayment: 100000, ThirdPartyInvestment: 50000},
		InterestRate: 5.5,
		TermYears:    10,
	}

	first := ComputeLoan(terms)
	second := ComputeLoan(terms)
	if first != second {
		t.Errorf("ComputeLoan is not deterministic: %+v vs %+v", first, second)
	}
}

func TestLoanDetailsTerms(t *testing.T) {
	tests := []struct {
		name              string
		details           LoanDetails
		expectedPrincipal float64
	}{
		{
			name: "Business purchase uses the purchase structure",
			details: LoanDetails{
				IsBusinessPurchase:   true,
				PurchasePrice:        500000,
				DownPayment:          100000,
				ThirdPartyInvestment: 50000,
				LoanAmount:           999999, // ignored in purchase mode
				InterestRate:         5.5,
				LoanTerm:             10,
			},
			expectedPrincipal: 350000,
		},
		{
			name: "Direct loan uses the loan amount",
			details: LoanDetails{
				IsBusinessPurchase: false,
				PurchasePrice:      500000, // ignored in direct mode
				LoanAmount:         200000,
				InterestRate:       4.0,
				LoanTerm:           15,
			},
			expectedPrincipal: 200000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := tt.details.Terms()
			if got := terms.Principal.Principal(); got != tt.expectedPrincipal {
				t.Errorf("Principal() = %v, expected %v", got, tt.expectedPrincipal)
			}
			if terms.InterestRate != tt.details.InterestRate {
				t.Errorf("InterestRate = %v, expected %v", terms.InterestRate, tt.details.InterestRate)
			}
			if terms.TermYears != tt.details.LoanTerm {
				t.Errorf("TermYears = %v, expected %v", terms.TermYears, tt.details.LoanTerm)
			}
		})
	}
}
