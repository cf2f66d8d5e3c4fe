// Package output provides utilities for formatting and displaying
// calculated project results.
package output

import (
	"fmt"
	"strings"

	"github.com/stevenkilzer/calc/pkg/datetime"
	"github.com/stevenkilzer/calc/pkg/finance"
	"github.com/stevenkilzer/calc/pkg/format"
)

// Result pairs a project's derived record with its combined projection for
// display.
type Result struct {
	Name       string
	StartDate  string // YYYY-MM, optional; enables calendar labels
	Financials finance.CalculatedFinancials
	Projection finance.Projection
}

// SampleAnnual thins a monthly schedule to year boundaries. The engine's
// series stays monthly; this is purely a display decision, so no months are
// recomputed.
func SampleAnnual(schedule []finance.ScheduleEntry) []finance.ScheduleEntry {
	sampled := make([]finance.ScheduleEntry, 0, len(schedule)/12+1)
	for _, entry := range schedule {
		if entry.Month%12 == 0 {
			sampled = append(sampled, entry)
		}
	}
	return sampled
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
// Schedules are sampled annually to keep the output scannable.
func PrettyFormat(results []Result) {
	for i, result := range results {
		fin := result.Financials
		fmt.Printf("--- Results for project %s ---\n", result.Name)
		fmt.Printf("Net Revenue:          %s\n", format.Currency(fin.NetRevenue))
		fmt.Printf("Gross Profit:         %s (%s)\n", format.Currency(fin.GrossProfit), format.Percent(fin.GrossMargin))
		fmt.Printf("Contribution Profit:  %s (%s)\n", format.Currency(fin.ContributionProfit), format.Percent(fin.ContributionMargin))
		fmt.Printf("Operating Income:     %s (%s)\n", format.Currency(fin.OperatingIncome), format.Percent(fin.OperatingMargin))
		fmt.Printf("Loan Amount:          %s\n", format.Currency(fin.LoanAmount))
		fmt.Printf("Monthly Loan Payment: %s\n", format.Payment(fin.MonthlyPayment, fin.LoanAmount))
		fmt.Printf("Total Interest:       %s\n", format.Currency(fin.TotalInterest))
		fmt.Printf("Net Cash Flow:        %s\n", format.Currency(fin.NetCashFlow))
		if result.Projection.BreakEvenMonth != nil {
			fmt.Printf("Break-even Point:     %d months\n", *result.Projection.BreakEvenMonth)
		} else {
			fmt.Printf("Break-even Point:     not reached\n")
		}

		annual := SampleAnnual(result.Projection.Schedule)
		if len(annual) > 0 {
			fmt.Printf("\nMonth | Date    | Loan Balance    | Cumulative Profit | Cumulative Cash Flow\n")
			fmt.Printf("_____ | ____    | ____________    | _________________ | ____________________\n")
			for _, entry := range annual {
				fmt.Printf("%5d | %-7s | %15s | %17s | %20s\n",
					entry.Month,
					datetime.MonthLabel(result.StartDate, entry.Month),
					format.Currency(entry.RemainingBalance),
					format.Currency(entry.CumulativeProfit),
					format.Currency(entry.CumulativeCashFlow),
				)
			}
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the full monthly series of every project as CSV.
func CsvString(results []Result) string {
	var builder strings.Builder
	builder.WriteString(`"project","month","date","remainingBalance","cumulativeProfit","cumulativeCashFlow"` + "\n")
	for _, result := range results {
		for _, entry := range result.Projection.Schedule {
			fmt.Fprintf(&builder, `"%s",%d,"%s",%.2f,%.2f,%.2f`+"\n",
				result.Name,
				entry.Month,
				datetime.MonthLabel(result.StartDate, entry.Month),
				entry.RemainingBalance,
				entry.CumulativeProfit,
				entry.CumulativeCashFlow,
			)
		}
	}
	return builder.String()
}
