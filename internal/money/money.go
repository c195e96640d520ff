// Package money holds the rounding rules shared by the limit resolver and the
// allocation engine so that displayed amounts and percentages never drift apart.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundAmount rounds an amount to the nearest whole unit, half away from zero.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// RoundPercent rounds a percentage to two decimal places.
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns part as a percentage of whole, rounded to two decimal places.
//
// whole must be non-zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return RoundPercent(part.Mul(hundred).Div(whole))
}

// FromPercent returns the amount that percent represents of whole. The result is
// not rounded.
func FromPercent(percent, whole decimal.Decimal) decimal.Decimal {
	return percent.Mul(whole).Div(hundred)
}
