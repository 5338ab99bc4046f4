package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InverseLerp returns where v sits between a and b, unclamped. A zero-width
// range maps to 0.
func InverseLerp(a, b, v float64) float64 {
	if b == a {
		return 0
	}
	return (v - a) / (b - a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
