package finance

import (
	"math"

	"github.com/stevenkilzer/calc/pkg/constants"
	"github.com/stevenkilzer/calc/pkg/mathutil"
)

// ComputeLoan derives the effective principal, the fixed monthly payment,
// and its totals from a set of loan terms using the standard amortization
// formula.
//
// When the formula is degenerate (for example a zero rate, where the
// denominator reaches zero) the monthly payment is reported as 0 and the
// totals are computed from that zero, so the record always holds finite
// numbers the projection can consume. Callers that want to surface this to
// a user should treat a zero payment alongside a nonzero principal as "not
// applicable". Negative principals and zero terms are accepted without
// validation.
func ComputeLoan(terms LoanTerms) LoanFigures {
	var loanAmount float64
	switch p := terms.Principal.(type) {
	case nil:
		loanAmount = 0
	default:
		loanAmount = p.Principal()
	}

	monthlyInterestRate := terms.InterestRate / constants.MonthsPerYear / constants.PercentageMultiplier
	numberOfPayments := terms.TermYears * constants.MonthsPerYear

	power := math.Pow(1+monthlyInterestRate, numberOfPayments)
	monthlyPayment := loanAmount * monthlyInterestRate * power / (power - 1)
	if !mathutil.IsFinite(monthlyPayment) {
		monthlyPayment = 0
	}

	return LoanFigures{
		LoanAmount:          loanAmount,
		MonthlyPayment:      monthlyPayment,
		TotalInterest:       monthlyPayment*numberOfPayments - loanAmount,
		TotalPaid:           monthlyPayment * numberOfPayments,
		MonthlyInterestRate: monthlyInterestRate,
		NumberOfPayments:    numberOfPayments,
	}
}
