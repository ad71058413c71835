// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// CurrencySymbol returns the display symbol for an ISO 4217 code,
// e.g. "USD" -> "$", "EUR" -> "€". Unknown codes render as "XYZ ".
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "$"
	}
	if c := money.GetCurrency(code); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code + " "
}

// KnownCurrency reports whether code is an ISO 4217 code go-money knows.
func KnownCurrency(code string) bool {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	return c != nil && c.Grapheme != ""
}

// FormatMoney formats an amount with two decimals behind the symbol.
// e.g., ("$", 100) -> "$100.00", ("$", 0.5) -> "$0.50"
func FormatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
