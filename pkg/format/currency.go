// Package format renders monetary and percentage values for display.
package format

import (
	"fmt"

	"github.com/stevenkilzer/calc/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotApplicable is shown where a computed value is degenerate, e.g. a zero
// monthly payment against a nonzero principal.
const NotApplicable = "n/a"

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// Percent renders a 0-100 scale percentage with one decimal.
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Payment renders a monthly payment, recognizing the degenerate case where
// the amortization formula produced a zero payment for a nonzero principal.
// The stored value is a finite zero; only the display says "n/a".
func Payment(payment, principal float64) string {
	if payment == 0 && !mathutil.IsZero(principal) {
		return NotApplicable
	}
	return Currency(payment)
}
