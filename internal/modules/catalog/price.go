package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatPrice renders a price with two decimals, prefixed with the currency
// symbol when one is known and suffixed with the ISO code otherwise.
func FormatPrice(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	value := amount.StringFixed(2)
	if sym, ok := currencySymbols[code]; ok {
		if amount.IsNegative() {
			return "-" + sym + amount.Abs().StringFixed(2)
		}
		return sym + value
	}
	if code == "" {
		return value
	}
	return value + " " + code
}

// Display returns the formatted price of the record.
func (pw ProductWarehouse) Display() string { return FormatPrice(pw.Price, pw.Currency) }
