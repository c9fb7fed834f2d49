package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyPrinter groups digits the way the report templates expect:
// 1,234,567.89.
var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands separators and two decimal
// places, prefixed with the currency code. The standard PDF fonts cannot
// encode the rupee sign, so amounts carry a textual prefix everywhere.
func FormatMoney(v float64) string {
	return moneyPrinter.Sprintf("INR %.2f", v)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
