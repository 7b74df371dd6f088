package view

import (
	"math"
	"strconv"
)

// Percent converts a probability in [0,1] to a percentage rounded to one decimal
func Percent(p float64) float64 {
	return math.Round(p*1000) / 10
}

// FormatPercent renders p as a one-decimal percentage without the % sign
func FormatPercent(p float64) string {
	return strconv.FormatFloat(Percent(p), 'f', 1, 64)
}

// Fraction returns the bar fill for p, clamped to [0,1]
func Fraction(p float64) float64 {
	f := Percent(p) / 100
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
