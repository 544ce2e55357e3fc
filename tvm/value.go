// SPDX-License-Identifier: MIT
// Package: finmath/tvm
//
// value.go - future value, present value, and net present value.

package tvm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// FutureValue computes the value of principal after compounding for the given
// number of periods at the given per-period rate:
//
//	FV = principal · (1+rate)^periods
//
// Contract:
//   - principal is any finite amount (negative principals model debts).
//   - rate is a decimal fraction strictly above -1 (0.005 means 0.5%).
//   - periods is finite and strictly positive; fractional periods are legal.
//
// Returns the unrounded future value. For fixed principal > 0 and periods > 0
// the result is strictly increasing in rate.
//
// Errors: fincore.ErrInvalidInput on any violated precondition.
//
// Complexity: O(1).
func FutureValue(principal, rate, periods float64) (float64, error) {
	// 1) Validate each argument in its own domain.
	if err := fincore.ValidateFinite(principal); err != nil {
		return 0, err
	}
	if err := fincore.ValidateRate(rate); err != nil {
		return 0, err
	}
	if err := fincore.ValidatePeriods(periods); err != nil {
		return 0, err
	}

	// 2) Single compounding step; (1+rate) > 0 is guaranteed by ValidateRate.
	return principal * math.Pow(1+rate, periods), nil
}

// PresentValue discounts a value one period back at the given rate:
//
//	PV = futureValue / (1+rate)
//
// Contract:
//   - futureValue is any finite amount.
//   - rate is a decimal fraction strictly above -1.
//
// Returns the unrounded present value.
//
// Errors: fincore.ErrInvalidInput on any violated precondition.
//
// Complexity: O(1).
func PresentValue(futureValue, rate float64) (float64, error) {
	// 1) Validate each argument in its own domain.
	if err := fincore.ValidateFinite(futureValue); err != nil {
		return 0, err
	}
	if err := fincore.ValidateRate(rate); err != nil {
		return 0, err
	}

	// 2) One-period discount; ValidateRate keeps the denominator > 0.
	return fincore.SafeDivide(futureValue, 1+rate)
}

// NetPresentValue discounts a cash-flow sequence at the given rate and sums
// the result. Index 0 is "now" and enters undiscounted; entry t is divided
// by (1+rate)^t:
//
//	NPV = Σ cashflows[t] / (1+rate)^t,   t = 0..len-1
//
// Contract:
//   - rate is a decimal fraction strictly above -1.
//   - cashflows has at least one finite entry; sign layout is unrestricted
//     (a pure-inflow stream has a well-defined, positive NPV).
//
// Returns the unrounded sum: solvers and tests rely on the raw value, so no
// monetary rounding is applied here.
//
// Errors: fincore.ErrInvalidInput on any violated precondition.
//
// Complexity: O(n) time, O(1) space.
func NetPresentValue(rate float64, cashflows []float64) (float64, error) {
	// 1) Validate the rate and the sequence shape.
	if err := fincore.ValidateRate(rate); err != nil {
		return 0, err
	}
	if len(cashflows) == 0 {
		return 0, fmt.Errorf("%w: need at least one cash flow", fincore.ErrInvalidInput)
	}
	if err := fincore.ValidateFinite(cashflows...); err != nil {
		return 0, err
	}

	// 2) Single pass with the reciprocal discount multiplier x = 1/(1+rate);
	//    factor holds x^t and is advanced by one multiply per period.
	var (
		x      float64 // per-period discount multiplier
		factor float64 // x^t, starting at t=0
		sum    float64 // running NPV accumulator
		t      int     // period index
	)
	x = 1 / (1 + rate)
	factor = 1
	for t = 0; t < len(cashflows); t++ { // accumulate discounted terms
		sum += cashflows[t] * factor
		factor *= x
	}

	return sum, nil
}
