// Package store persists project snapshots keyed by an opaque project id.
// A stored project is the last known inputs plus the last known computed
// outputs; the outputs are a recomputable cache, never a source of truth.
package store

import (
	"context"
	"errors"

	"github.com/stevenkilzer/calc/pkg/finance"
)

// ErrNotFound is returned when a project id has no stored snapshot.
var ErrNotFound = errors.New("project not found")

// CashFlowActivities holds the per-category cash flow line items as entered
// by the user. Categories are summed once, before the snapshot reaches the
// calculation core.
type CashFlowActivities struct {
	Operating map[string]float64 `json:"operatingActivities,omitempty"`
	Investing map[string]float64 `json:"investingActivities,omitempty"`
	Financing map[string]float64 `json:"financingActivities,omitempty"`
}

// Totals aggregates each category's line items.
func (a CashFlowActivities) Totals() finance.CashFlowTotals {
	return finance.CashFlowTotals{
		Operating: finance.SumLineItems(a.Operating),
		Investing: finance.SumLineItems(a.Investing),
		Financing: finance.SumLineItems(a.Financing),
	}
}

// ProjectData is the full user-entered input document for one project.
type ProjectData struct {
	Business  finance.BusinessFinancials `json:"business"`
	Loan      finance.LoanDetails        `json:"loan"`
	CashFlow  CashFlowActivities         `json:"cashFlow"`
	StartDate string                     `json:"startDate,omitempty"` // YYYY-MM, used for schedule date labels
}

// Snapshot converts the input document into the engine's input record.
func (d ProjectData) Snapshot() finance.Snapshot {
	return finance.Snapshot{
		Business: d.Business,
		Loan:     d.Loan,
		CashFlow: d.CashFlow.Totals(),
	}
}

// Project is one stored planning project.
type Project struct {
	ID      string                        `json:"id"`
	Name    string                        `json:"name"`
	Data    ProjectData                   `json:"data"`
	Results *finance.CalculatedFinancials `json:"results,omitempty"`
}

// ProjectRepository is the persistence boundary for projects. The engine
// never sees this interface; only the CLI and HTTP layers do.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Load(ctx context.Context, id string) (*Project, error)
	Save(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
}
