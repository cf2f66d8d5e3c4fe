package finance

import (
	"math"

	"github.com/stevenkilzer/calc/pkg/constants"
	"go.uber.org/zap"
)

// Engine walks the combined month-by-month projection and produces loan
// amortization schedules. It holds no state beyond its logger; every call
// reads only its arguments and is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a projection engine. If logger is nil, a no-op logger
// is used to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Project combines loan amortization with accrued operating profit and cash
// flow into a month-indexed series, detecting the break-even month.
//
// The cumulative profit is seeded at -loanAmount so that the initial
// principal outlay is recovered before break-even is declared; break-even
// is defined purely on that accumulated figure and deliberately ignores the
// loan balance trajectory. The series always runs at least until loan
// payoff even when the requested horizon is shorter, and at least the
// requested horizon even after payoff. After the final scheduled payment
// the balance is left exactly as last computed; floating-point residue is
// expected and not corrected.
func (e *Engine) Project(fin CalculatedFinancials, horizonMonths int) Projection {
	remainingBalance := fin.LoanAmount
	cumulativeProfit := -fin.LoanAmount
	cumulativeCashFlow := 0.0
	var breakEvenMonth *int

	// Steady-state annualized projection: both monthly figures are
	// constant across the whole horizon.
	monthlyProfit := fin.OperatingIncome / constants.MonthsPerYear
	monthlyCashFlow := fin.NetCashFlow / constants.MonthsPerYear

	horizon := horizonMonths
	if payoff := int(math.Ceil(fin.NumberOfPayments)); payoff > horizon {
		horizon = payoff
	}

	schedule := make([]ScheduleEntry, 0, max(horizon, 0))
	for month := 1; month <= horizon; month++ {
		if float64(month) <= fin.NumberOfPayments {
			interestPayment := remainingBalance * fin.MonthlyInterestRate
			principalPayment := fin.MonthlyPayment - interestPayment
			remainingBalance -= principalPayment
		}

		cumulativeProfit += monthlyProfit
		cumulativeCashFlow += monthlyCashFlow

		if breakEvenMonth == nil && cumulativeProfit >= 0 {
			m := month
			breakEvenMonth = &m
			e.logger.Debug("break-even reached",
				zap.String("op", "finance.Project"),
				zap.Int("month", month),
				zap.Float64("cumulativeProfit", cumulativeProfit),
			)
		}

		schedule = append(schedule, ScheduleEntry{
			Month:              month,
			RemainingBalance:   remainingBalance,
			CumulativeProfit:   cumulativeProfit,
			CumulativeCashFlow: cumulativeCashFlow,
		})
	}

	return Projection{Schedule: schedule, BreakEvenMonth: breakEvenMonth}
}

// AmortizationSchedule produces the standalone per-month loan schedule:
// payment split into principal and interest with a running balance and
// cumulative interest. An empty or degenerate loan yields an empty
// schedule.
func (e *Engine) AmortizationSchedule(fin CalculatedFinancials) []AmortizationScheduleItem {
	payments := int(fin.NumberOfPayments)
	if payments <= 0 {
		return nil
	}

	remainingBalance := fin.LoanAmount
	cumulativeInterest := 0.0
	schedule := make([]AmortizationScheduleItem, 0, payments)

	for month := 1; month <= payments; month++ {
		interestPayment := remainingBalance * fin.MonthlyInterestRate
		principalPayment := fin.MonthlyPayment - interestPayment
		remainingBalance -= principalPayment
		cumulativeInterest += interestPayment

		schedule = append(schedule, AmortizationScheduleItem{
			Month:              month,
			Payment:            fin.MonthlyPayment,
			PrincipalPayment:   principalPayment,
			InterestPayment:    interestPayment,
			RemainingBalance:   remainingBalance,
			CumulativeInterest: cumulativeInterest,
		})
	}

	return schedule
}
