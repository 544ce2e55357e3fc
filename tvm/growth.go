// SPDX-License-Identifier: MIT
// Package: finmath/tvm
//
// growth.go - compound annual growth rate and the rule of 72.

package tvm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// CAGR computes the compound annual growth rate between a beginning and an
// ending value over the given number of periods:
//
//	CAGR = (ending/beginning)^(1/periods) - 1
//
// Contract:
//   - beginning must be strictly positive (a zero or negative base has no
//     real-valued growth rate).
//   - ending must be non-negative; ending == 0 yields exactly -1 (total loss).
//   - periods is finite and strictly positive; fractional horizons are legal.
//
// Returns the unrounded decimal-fraction rate (0.2493... means 24.93% p.a.).
//
// Errors:
//   - fincore.ErrInvalidInput   - non-finite arguments, negative values,
//     or a non-positive period count.
//   - fincore.ErrDivisionByZero - beginning == 0.
//
// Complexity: O(1).
func CAGR(beginning, ending, periods float64) (float64, error) {
	// 1) Validate shape and domains.
	if err := fincore.ValidateFinite(beginning, ending); err != nil {
		return 0, err
	}
	if err := fincore.ValidatePeriods(periods); err != nil {
		return 0, err
	}
	if beginning < 0 {
		return 0, fmt.Errorf("%w: beginning value must be positive, got %v",
			fincore.ErrInvalidInput, beginning)
	}
	if ending < 0 {
		return 0, fmt.Errorf("%w: ending value must not be negative, got %v",
			fincore.ErrInvalidInput, ending)
	}

	// 2) Growth ratio; beginning == 0 surfaces as a zero denominator.
	ratio, err := fincore.SafeDivide(ending, beginning)
	if err != nil {
		return 0, err
	}

	// 3) n-th root and shift to a rate. ratio >= 0 keeps Pow in the real domain.
	return math.Pow(ratio, 1/periods) - 1, nil
}

// RuleOf72 estimates how many periods an investment needs to double at the
// given per-period rate, using the classic approximation:
//
//	doubling ≈ 72 / (100·rate) = 0.72 / rate
//
// The estimate is closest to the exact ln(2)/ln(1+r) answer for rates between
// about 0.06 and 0.10.
//
// Contract:
//   - rate is a decimal fraction strictly above -1 and not zero.
//
// Returns the unrounded period count; negative rates yield a negative value
// (the halving time of a shrinking balance).
//
// Errors:
//   - fincore.ErrInvalidInput   - non-finite or out-of-domain rate.
//   - fincore.ErrDivisionByZero - rate == 0 (nothing ever doubles at 0%).
//
// Complexity: O(1).
func RuleOf72(rate float64) (float64, error) {
	// 1) Validate the rate domain.
	if err := fincore.ValidateRate(rate); err != nil {
		return 0, err
	}

	// 2) The approximation itself; rate == 0 is rejected by SafeDivide.
	return fincore.SafeDivide(0.72, rate)
}
