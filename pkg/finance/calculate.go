package finance

// CalculateFinancials combines the three leaf calculators into the flat
// derived record: profitability ratios, loan figures, and net cash flow.
// It is the facade the collaborating layers call; the result is always
// regenerated from the snapshot, never loaded as a source of truth.
func CalculateFinancials(s Snapshot) CalculatedFinancials {
	return CalculatedFinancials{
		Ratios:      ComputeRatios(s.Business),
		LoanFigures: ComputeLoan(s.Loan.Terms()),
		NetCashFlow: AggregateCashFlow(s.CashFlow.Operating, s.CashFlow.Investing, s.CashFlow.Financing),
	}
}
