package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals shown in reports. Stored values are never rounded.
const DisplayPrecision = 2

// FormatAmount renders an amount for display, e.g. "Rs. 1250.50".
// An empty symbol yields just the number.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	number := amount.StringFixed(DisplayPrecision)
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return number
	}
	return symbol + " " + number
}

// FormatQuantity renders a piece count or rate without trailing zeros.
func FormatQuantity(d decimal.Decimal) string {
	return d.String()
}
