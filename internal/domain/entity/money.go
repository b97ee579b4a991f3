package entity

import "math"

// Monetary values are stored as integer cents so that totals are exact and
// reversible. Conversion happens only at the API boundary.

// CentsFromDecimal converts a decimal amount to cents, rounding half away
// from zero.
func CentsFromDecimal(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// DecimalFromCents converts cents back to a decimal amount.
func DecimalFromCents(cents int64) float64 {
	return float64(cents) / 100
}

// RoundPercent applies a percentage to an amount in cents, rounding the
// result to a whole cent. Used for tax computation.
func RoundPercent(cents int64, percent float64) int64 {
	return int64(math.Round(float64(cents) * percent / 100))
}
