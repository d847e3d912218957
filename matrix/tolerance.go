// SPDX-License-Identifier: MIT

package matrix

import "math"

// NearlyEqual reports whether x and y agree under DefaultEpsilon:
// |x-y| < eps, or |x-y| / min(MaxFloat64, |x|+|y|) < eps.
func NearlyEqual(x, y float64) bool {
	return NearlyEqualTol(x, y, DefaultEpsilon)
}

// NearlyEqualTol is NearlyEqual with an explicit tolerance.
// Identical values (including both zero) are always equal; NaN never is.
func NearlyEqualTol(x, y, eps float64) bool {
	if x == y {
		return true
	}
	diff := math.Abs(x - y)
	if diff < eps {
		return true
	}

	// min caps |x|+|y| so two huge operands cannot overflow to +Inf.
	return diff/math.Min(math.MaxFloat64, math.Abs(x)+math.Abs(y)) < eps
}

// nearZero reports whether v counts as zero under eps.
func nearZero(v, eps float64) bool {
	return NearlyEqualTol(v, 0, eps)
}
