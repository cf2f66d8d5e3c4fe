package finance

import "github.com/stevenkilzer/calc/pkg/mathutil"

// ComputeRatios derives the successive profit stages and their margins from
// a revenue and cost breakdown. Each margin is a percent of net revenue,
// not of its own stage profit. A zero net revenue yields zero margins so
// that user-facing percentages never carry NaN.
func ComputeRatios(b BusinessFinancials) Ratios {
	netRevenue := b.Revenue.Ecommerce + b.Revenue.Wholesale
	grossProfit := netRevenue - b.COGS
	contributionProfit := grossProfit - b.Selling - b.Marketing
	operatingIncome := contributionProfit - b.CoreOverhead

	return Ratios{
		NetRevenue:         netRevenue,
		GrossProfit:        grossProfit,
		GrossMargin:        mathutil.Percentage(grossProfit, netRevenue),
		ContributionProfit: contributionProfit,
		ContributionMargin: mathutil.Percentage(contributionProfit, netRevenue),
		OperatingIncome:    operatingIncome,
		OperatingMargin:    mathutil.Percentage(operatingIncome, netRevenue),
	}
}
