// SPDX-License-Identifier: MIT
// Package: finmath/fincore
//
// round.go - presentation rounding helpers.
//
// Formulas in this repository compute at full float64 precision and round
// only where a documented convention demands it (cents in amortization,
// three-decimal discount factors). These helpers centralize that rounding so
// every package truncates identically.

package fincore

import "math"

// math.Pow10 is a positive normal float64 only for exponents in
// [minPow10, maxPow10]; outside it is zero or +Inf, which would turn the
// scale arithmetic below into NaN.
const (
	maxPow10 = 308
	minPow10 = -307
)

// maxRoundable is 2^53, the magnitude from which every float64 is already an
// integer; a decimal shift at or beyond it cannot change the value.
const maxRoundable = 1 << 53

// clampPlaces bounds a decimal-shift request to the math.Pow10 domain;
// requests outside are served at the nearest bound.
func clampPlaces(places int) int {
	if places > maxPow10 {
		return maxPow10
	}
	if places < minPow10 {
		return minPow10
	}

	return places
}

// RoundTo rounds x to the given number of decimal places using half-away-from-
// zero semantics (the behavior of math.Round): RoundTo(2.5, 0) = 3,
// RoundTo(-2.5, 0) = -3, RoundTo(0.125, 2) = 0.13.
//
// Contract:
//   - places is the count of retained decimal digits; 0 rounds to integers.
//     Values outside [-307, 308] are clamped to that range, the widest where
//     10^places is a positive normal float64.
//   - Non-finite x propagates unchanged (NaN stays NaN, ±Inf stays ±Inf);
//     x too large for the decimal shift to move any digit is returned as-is.
//
// Complexity: O(1).
func RoundTo(x float64, places int) float64 {
	var (
		scale  float64 // 10^places after clamping, positive and normal
		scaled float64 // x shifted so the target digit sits at the unit place
	)
	scale = math.Pow10(clampPlaces(places))
	scaled = x * scale
	if !(math.Abs(scaled) < maxRoundable) { // NaN, ±Inf, or already integral
		return x
	}

	return math.Round(scaled) / scale
}

// CeilTo rounds x upward (toward +Inf) to the given number of decimal places:
// CeilTo(0.826446, 3) = 0.827. Discount-factor tables use this convention so
// a factor is never understated.
//
// Contract:
//   - places is the count of retained decimal digits; 0 ceils to integers.
//     Values outside [-307, 308] are clamped, exactly as in RoundTo.
//   - Non-finite x propagates unchanged; x too large for the decimal shift to
//     move any digit is returned as-is.
//
// Complexity: O(1).
func CeilTo(x float64, places int) float64 {
	var (
		scale  float64 // 10^places after clamping, positive and normal
		scaled float64 // x shifted so the target digit sits at the unit place
	)
	scale = math.Pow10(clampPlaces(places))
	scaled = x * scale
	if !(math.Abs(scaled) < maxRoundable) { // NaN, ±Inf, or already integral
		return x
	}

	return math.Ceil(scaled) / scale
}
