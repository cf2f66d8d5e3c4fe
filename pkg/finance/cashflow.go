package finance

// AggregateCashFlow sums the three cash flow categories into a net figure.
func AggregateCashFlow(operating, investing, financing float64) float64 {
	return operating + investing + financing
}

// SumLineItems totals the line items of a single cash flow category. The
// caller aggregates each category once before building a Snapshot; the core
// itself only ever sees the three totals. A nil map totals to zero.
func SumLineItems(items map[string]float64) float64 {
	total := 0.0
	for _, amount := range items {
		total += amount
	}
	return total
}
