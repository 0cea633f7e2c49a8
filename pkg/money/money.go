// Package money renders minor currency units for display.
package money

import "github.com/shopspring/decimal"

// Scale is the number of minor units per major unit, expressed as a power of ten.
const Scale = 2

// Decimal converts an amount in minor units to major units.
func Decimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -Scale)
}

// Format renders minor units as a dollar amount with two decimals, e.g. 150 -> "$1.50".
func Format(minor int64) string {
	d := Decimal(minor)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(Scale)
	}
	return "$" + d.StringFixed(Scale)
}
