// Package finance implements the financial projection core: profitability
// ratios, loan amortization figures, cash flow aggregation, and the combined
// break-even projection. All functions are pure; degenerate inputs produce
// defined numeric results rather than errors.
package finance

// Revenue holds the per-channel revenue breakdown.
type Revenue struct {
	Ecommerce float64 `json:"ecommerce"`
	Wholesale float64 `json:"wholesale"`
}

// BusinessFinancials is the revenue and cost structure snapshot. Values are
// not validated; negative amounts flow through the arithmetic unchanged.
type BusinessFinancials struct {
	Revenue      Revenue `json:"revenue"`
	COGS         float64 `json:"cogs"`
	Selling      float64 `json:"selling"`
	Marketing    float64 `json:"marketing"`
	CoreOverhead float64 `json:"coreOverhead"`
}

// LoanPrincipal is the effective-principal derivation for a loan. The two
// implementations are mutually exclusive: a loan either names its principal
// directly or derives it from a business purchase structure.
type LoanPrincipal interface {
	Principal() float64
}

// DirectLoan names the borrowed amount directly.
type DirectLoan struct {
	Amount float64
}

// Principal returns the loan amount as-is.
func (d DirectLoan) Principal() float64 { return d.Amount }

// PurchaseLoan derives the principal from a business purchase: the purchase
// price less the down payment and any third-party investment.
type PurchaseLoan struct {
	PurchasePrice        float64
	DownPayment          float64
	ThirdPartyInvestment float64
}

// Principal returns the financed portion of the purchase.
func (p PurchaseLoan) Principal() float64 {
	return p.PurchasePrice - p.DownPayment - p.ThirdPartyInvestment
}

// LoanTerms describes a loan to be amortized with fixed monthly payments.
type LoanTerms struct {
	Principal    LoanPrincipal
	InterestRate float64 // annual percent, e.g. 5.5 means 5.5%
	TermYears    float64 // fractional years are accepted
}

// LoanDetails is the wire and configuration form of loan input. It mirrors
// the stored snapshot shape; Terms converts it into the tagged LoanTerms
// variant consumed by ComputeLoan.
type LoanDetails struct {
	IsBusinessPurchase   bool    `json:"isBusinessPurchase"`
	PurchasePrice        float64 `json:"purchasePrice"`
	DownPayment          float64 `json:"downPayment"`
	ThirdPartyInvestment float64 `json:"thirdPartyInvestment"`
	LoanAmount           float64 `json:"loanAmount"`
	InterestRate         float64 `json:"interestRate"`
	LoanTerm             float64 `json:"loanTerm"` // years
}

// Terms resolves the purchase flag into the principal variant.
func (d LoanDetails) Terms() LoanTerms {
	var principal LoanPrincipal
	if d.IsBusinessPurchase {
		principal = PurchaseLoan{
			PurchasePrice:        d.PurchasePrice,
			DownPayment:          d.DownPayment,
			ThirdPartyInvestment: d.ThirdPartyInvestment,
		}
	} else {
		principal = DirectLoan{Amount: d.LoanAmount}
	}
	return LoanTerms{
		Principal:    principal,
		InterestRate: d.InterestRate,
		TermYears:    d.LoanTerm,
	}
}

// CashFlowTotals holds the three pre-aggregated cash flow categories. The
// summation of individual line items within each category happens before
// the snapshot reaches the core; see SumLineItems.
type CashFlowTotals struct {
	Operating float64 `json:"operating"`
	Investing float64 `json:"investing"`
	Financing float64 `json:"financing"`
}

// Snapshot is the complete engine input: one immutable view of a business,
// its purchase loan, and its cash flows.
type Snapshot struct {
	Business BusinessFinancials `json:"business"`
	Loan     LoanDetails        `json:"loan"`
	CashFlow CashFlowTotals     `json:"cashFlow"`
}

// Ratios holds the profitability figures derived from a revenue and cost
// breakdown. Margins are percentages on the 0-100 scale, each expressed as
// a percent of net revenue.
type Ratios struct {
	NetRevenue         float64 `json:"netRevenue"`
	GrossProfit        float64 `json:"grossProfit"`
	GrossMargin        float64 `json:"grossMargin"`
	ContributionProfit float64 `json:"contributionProfit"`
	ContributionMargin float64 `json:"contributionMargin"`
	OperatingIncome    float64 `json:"operatingIncome"`
	OperatingMargin    float64 `json:"operatingMargin"`
}

// LoanFigures holds the derived loan values. All fields are always finite;
// a degenerate amortization formula yields a zero MonthlyPayment and totals
// computed consistently from that zero.
type LoanFigures struct {
	LoanAmount          float64 `json:"loanAmount"`
	MonthlyPayment      float64 `json:"monthlyPayment"`
	TotalInterest       float64 `json:"totalInterest"`
	TotalPaid           float64 `json:"totalPaid"`
	MonthlyInterestRate float64 `json:"monthlyInterestRate"`
	NumberOfPayments    float64 `json:"numberOfPayments"`
}

// CalculatedFinancials is the flat derived record combining ratios, loan
// figures, and net cash flow. It is always recomputable from a Snapshot and
// never treated as a source of truth.
type CalculatedFinancials struct {
	Ratios
	LoanFigures
	NetCashFlow float64 `json:"netCashFlow"`
}

// ScheduleEntry is one month of the combined projection. RemainingBalance
// may carry small floating-point residue near payoff; it is reported as
// computed, not corrected.
type ScheduleEntry struct {
	Month              int     `json:"month"`
	RemainingBalance   float64 `json:"remainingBalance"`
	CumulativeProfit   float64 `json:"cumulativeProfit"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
}

// AmortizationScheduleItem is one month of the standalone loan amortization
// schedule.
type AmortizationScheduleItem struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	PrincipalPayment   float64 `json:"principalPayment"`
	InterestPayment    float64 `json:"interestPayment"`
	RemainingBalance   float64 `json:"remainingBalance"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
}

// Projection is the month-by-month combined series plus the break-even
// month. BreakEvenMonth is nil when cumulative profit never reaches zero
// within the horizon.
type Projection struct {
	Schedule       []ScheduleEntry `json:"schedule"`
	BreakEvenMonth *int            `json:"breakEvenMonth"`
}
