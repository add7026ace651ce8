package budgeting

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount to integer minor units,
// rounding half away from zero at the cent boundary (123.456 -> 12346).
func ToMinorUnits(major decimal.Decimal) int64 {
	return major.Mul(hundred).Round(0).IntPart()
}

// MajorToMinor is a convenience wrapper for float inputs as they arrive
// from JSON payloads. The float is lifted into a decimal before scaling so
// the rounding happens in base 10.
func MajorToMinor(major float64) int64 {
	return ToMinorUnits(decimal.NewFromFloat(major))
}
