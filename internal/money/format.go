// Package money renders rupee amounts the way the client displays them, so
// figures quoted in the grounding prompt match what the user sees.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with the rupee symbol and en-IN digit
// grouping, e.g. 45000 -> "₹45,000". Amounts are whole rupees; fractional
// paise are kept when present.
func FormatINR(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2),
	))
}
