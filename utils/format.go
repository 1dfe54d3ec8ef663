package utils

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes prices when no symbol is configured.
const DefaultCurrencySymbol = "$"

// FormatPrice turns an amount in cents into a display price: 16500 -> "$165.00".
func FormatPrice(cents int) string {
	return FormatPriceWith(DefaultCurrencySymbol, cents)
}

// FormatPriceWith is FormatPrice with an explicit currency symbol.
func FormatPriceWith(symbol string, cents int) string {
	return symbol + decimal.New(int64(cents), -2).StringFixed(2)
}

// Pluralize prefixes noun with n and adds an "s" unless n is exactly 1.
func Pluralize(noun string, n int) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
