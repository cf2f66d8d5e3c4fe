package server

import (
	"encoding/json"

	"github.com/stevenkilzer/calc/internal/store"
	"github.com/stevenkilzer/calc/pkg/finance"
)

// calculateRequest is the ad-hoc calculation payload. Cash flow categories
// arrive as raw line-item maps so that partially filled forms round-trip;
// non-numeric entries contribute zero.
type calculateRequest struct {
	Business      finance.BusinessFinancials `json:"business"`
	Loan          finance.LoanDetails        `json:"loan"`
	CashFlow      cashFlowPayload            `json:"cashFlow"`
	HorizonMonths int                        `json:"horizonMonths,omitempty"`
}

type cashFlowPayload struct {
	Operating map[string]interface{} `json:"operatingActivities"`
	Investing map[string]interface{} `json:"investingActivities"`
	Financing map[string]interface{} `json:"financingActivities"`
}

func (p cashFlowPayload) totals() finance.CashFlowTotals {
	return finance.CashFlowTotals{
		Operating: sumNumeric(p.Operating),
		Investing: sumNumeric(p.Investing),
		Financing: sumNumeric(p.Financing),
	}
}

// sumNumeric totals the numeric values of a raw line-item map. Anything
// that is not a number contributes zero rather than failing the request.
func sumNumeric(items map[string]interface{}) float64 {
	total := 0.0
	for _, value := range items {
		switch v := value.(type) {
		case float64:
			total += v
		case int:
			total += float64(v)
		case int64:
			total += float64(v)
		case json.Number:
			if parsed, err := v.Float64(); err == nil {
				total += parsed
			}
		}
	}
	return total
}

func (req calculateRequest) snapshot() finance.Snapshot {
	return finance.Snapshot{
		Business: req.Business,
		Loan:     req.Loan,
		CashFlow: req.CashFlow.totals(),
	}
}

// calculateResponse carries the derived record plus the full monthly series
// for charting; clients sample it at whatever granularity they like.
type calculateResponse struct {
	Financials     finance.CalculatedFinancials       `json:"financials"`
	Schedule       []finance.ScheduleEntry            `json:"schedule"`
	Amortization   []finance.AmortizationScheduleItem `json:"amortization"`
	BreakEvenMonth *int                               `json:"breakEvenMonth"`
	Duration       string                             `json:"duration"`
}

// createProjectRequest creates a project, optionally pre-filled with the
// sample dataset.
type createProjectRequest struct {
	Name   string             `json:"name"`
	Sample bool               `json:"sample,omitempty"`
	Data   *store.ProjectData `json:"data,omitempty"`
}

// updateProjectRequest replaces a project's name and/or input document.
type updateProjectRequest struct {
	Name string             `json:"name,omitempty"`
	Data *store.ProjectData `json:"data,omitempty"`
}
