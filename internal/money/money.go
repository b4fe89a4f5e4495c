// Package money formats monetary amounts for display. Amounts are
// currency-agnostic numbers; callers supply any symbol themselves.
package money

import "github.com/shopspring/decimal"

// FormatPrice renders amount as a fixed two-decimal string with no grouping
// separators and no currency symbol, e.g. 1234.5 -> "1234.50".
func FormatPrice(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
