// SPDX-License-Identifier: MIT
// Package: finmath/tvm
//
// interest.go - compound interest with an explicit compounding frequency.

package tvm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// CompoundInterest computes the value of principal after periods at the given
// nominal per-period rate, compounded compoundings times per period:
//
//	CI = principal · (1 + rate/compoundings)^(compoundings·periods)
//
// With compoundings = 4 and periods in years this is quarterly compounding of
// an annual nominal rate.
//
// Contract:
//   - principal is any finite amount.
//   - rate is a decimal fraction strictly above -1 (0.043 means 4.3% nominal).
//   - compoundings is finite and strictly positive; fractional frequencies
//     are legal (continuous compounding is approximated as compoundings → ∞,
//     not provided here).
//   - periods is finite and strictly positive.
//
// Returns the unrounded compounded value.
//
// Errors:
//   - fincore.ErrInvalidInput   - non-finite or out-of-domain arguments.
//   - fincore.ErrDivisionByZero - compoundings == 0 (a degenerate frequency).
//
// Complexity: O(1).
func CompoundInterest(principal, rate, compoundings, periods float64) (float64, error) {
	// 1) Validate each argument in its own domain.
	if err := fincore.ValidateFinite(principal, compoundings); err != nil {
		return 0, err
	}
	if err := fincore.ValidateRate(rate); err != nil {
		return 0, err
	}
	if err := fincore.ValidatePeriods(periods); err != nil {
		return 0, err
	}
	if compoundings < 0 {
		return 0, fmt.Errorf("%w: compounding frequency must not be negative, got %v",
			fincore.ErrInvalidInput, compoundings)
	}

	// 2) Per-compounding rate; frequency zero is rejected here, not as ±Inf.
	perStep, err := fincore.SafeDivide(rate, compoundings)
	if err != nil {
		return 0, err
	}

	// 3) Compound over compoundings·periods steps.
	return principal * math.Pow(1+perStep, compoundings*periods), nil
}
