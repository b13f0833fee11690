package bonus

import "math"

// AdoptionFunc maps a bonus amount to a daily referral success probability.
// Implementations should be non-decreasing in bonus.
type AdoptionFunc func(bonus float64) float64

// Linear returns p(b) = base + perDollar·b, clamped to [0, 1].
func Linear(base, perDollar float64) AdoptionFunc {
	return func(b float64) float64 {
		return clamp01(base + perDollar*b)
	}
}

// Logistic returns p(b) = ceiling / (1 + e^(-steepness·(b - midpoint))),
// clamped to [0, 1].
func Logistic(midpoint, steepness, ceiling float64) AdoptionFunc {
	return func(b float64) float64 {
		return clamp01(ceiling / (1 + math.Exp(-steepness*(b-midpoint))))
	}
}

// Step returns p(b) = high for b >= threshold and low otherwise.
func Step(threshold, low, high float64) AdoptionFunc {
	return func(b float64) float64 {
		if b >= threshold {
			return clamp01(high)
		}
		return clamp01(low)
	}
}

func clamp01(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
