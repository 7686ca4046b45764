package vmath

import "math"

// Epsilon guards divisions by near-zero world extents
const Epsilon = 1e-6

// NearlyEqual reports |a-b| <= eps
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// SafeDiv returns a / max(b, Epsilon)
func SafeDiv(a, b float64) float64 {
	return a / math.Max(b, Epsilon)
}
