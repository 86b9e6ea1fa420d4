package evaluator

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimal places kept for display.
const DefaultPrecision = 6

// epsilon nudges values like 1.0049999999 that are really 1.005 before rounding.
const epsilon = 0x1p-52

// Round rounds v half-up to the given number of decimal places.
// Negative zero is normalized to zero. Values too large to scale are returned unchanged.
func Round(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	scale := math.Pow10(places)
	scaled := (v + epsilon) * scale
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return v
	}
	r := math.Floor(scaled+0.5) / scale
	if r == 0 {
		return 0
	}
	return r
}

// Format rounds v and prints it in plain decimal notation, without exponent
// and without trailing zeros.
func Format(v float64, places int) string {
	return strconv.FormatFloat(Round(v, places), 'f', -1, 64)
}
