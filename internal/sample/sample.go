// Package sample generates a pre-filled demonstration project.
package sample

import (
	"github.com/stevenkilzer/calc/internal/store"
	"github.com/stevenkilzer/calc/pkg/finance"
)

// NewProject builds the canonical sample dataset: a retail business with
// 250k annual revenue split 20/80 between ecommerce and wholesale, bought
// for 500k with a 100k down payment and 50k of third-party investment.
func NewProject(id, name string) *store.Project {
	revenue := 250000.0
	cogs := revenue * 0.6
	grossProfit := revenue - cogs
	operatingExpenses := grossProfit * 0.7
	operatingIncome := grossProfit - operatingExpenses

	return &store.Project{
		ID:   id,
		Name: name,
		Data: store.ProjectData{
			Business: finance.BusinessFinancials{
				Revenue: finance.Revenue{
					Ecommerce: revenue * 0.2,
					Wholesale: revenue * 0.8,
				},
				COGS:         cogs,
				Selling:      operatingExpenses * 0.4,
				Marketing:    operatingExpenses * 0.2,
				CoreOverhead: operatingExpenses * 0.4,
			},
			Loan: finance.LoanDetails{
				IsBusinessPurchase:   true,
				PurchasePrice:        500000,
				DownPayment:          100000,
				ThirdPartyInvestment: 50000,
				LoanAmount:           350000,
				InterestRate:         5.5,
				LoanTerm:             10,
			},
			CashFlow: store.CashFlowActivities{
				Operating: map[string]float64{
					"netIncome":          operatingIncome,
					"depreciation":       15000,
					"accountsReceivable": -5000,
					"inventory":          -10000,
					"accountsPayable":    8000,
					"otherOperating":     -2000,
				},
				Investing: map[string]float64{
					"capitalExpenditures": -30000,
					"investments":         0,
					"otherInvesting":      -5000,
				},
				Financing: map[string]float64{
					"debtIssuance":   350000,
					"debtRepayment":  -35000,
					"dividendsPaid":  0,
					"stockIssuance":  0,
					"otherFinancing": -2000,
				},
			},
		},
	}
}
