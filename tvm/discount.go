// SPDX-License-Identifier: MIT
// Package: finmath/tvm
//
// discount.go - discount-factor tables.

package tvm

import (
	"github.com/katalvlaran/finmath/fincore"
)

// discountFactorPlaces is the tabulation precision of DiscountFactors.
// Factors round UP (fincore.CeilTo) so a table never understates a factor.
const discountFactorPlaces = 3

// DiscountFactors tabulates the first periods discount factors for the given
// per-period rate:
//
//	factor[t] = 1 / (1+rate)^t,   t = 0..periods-1
//
// factor[0] is always 1. Each entry is rounded upward at the third decimal,
// the conventional presentation of printed discount tables.
//
// Contract:
//   - rate is a decimal fraction strictly above -1.
//   - periods is strictly positive.
//
// Errors: fincore.ErrInvalidInput on any violated precondition.
//
// Complexity: O(n) time, O(n) space for the returned table.
func DiscountFactors(rate float64, periods int) ([]float64, error) {
	// 1) Validate the rate and the table size.
	if err := fincore.ValidateRate(rate); err != nil {
		return nil, err
	}
	if err := fincore.ValidatePeriods(float64(periods)); err != nil {
		return nil, err
	}

	// 2) Build the table with one division per row; (1+rate) > 0 after
	//    ValidateRate, so the chain never leaves the positive reals.
	var (
		factors []float64 // the resulting table
		raw     float64   // unrounded running factor 1/(1+rate)^t
		t       int       // period index
	)
	factors = make([]float64, periods)
	raw = 1
	for t = 0; t < periods; t++ { // tabulate row by row
		factors[t] = fincore.CeilTo(raw, discountFactorPlaces)
		raw /= 1 + rate
	}

	return factors, nil
}
