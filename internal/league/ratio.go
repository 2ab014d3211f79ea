package league

import "math"

// Ratio performs division with a zero-denominator guard.
// An empty group (no shots, no appearances) ranks as 0 instead of NaN.
func Ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Round2 rounds to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
