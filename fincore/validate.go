// SPDX-License-Identifier: MIT
// Package: finmath/fincore
//
// validate.go - input validation shared by every formula package.
//
// This file contains small, tight, and well-documented helpers that:
//  1. Validate scalar domains (rates, period counts, finiteness).
//  2. Validate cash-flow sequences (cardinality, finiteness, sign change).
//  3. Guard divisions so that no formula ever returns ±Inf or NaN silently.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n) worst-case where n is the cash-flow length; no hidden allocations.

package fincore

import (
	"fmt"
	"math"
)

// MinCashFlows is the minimum cardinality of a cash-flow sequence accepted by
// sequence-based formulas (NPV, IRR, payback, profitability index). A single
// entry carries no inter-period information, so nothing meaningful can be
// computed from it.
const MinCashFlows = 2

// MinRate is the exclusive lower bound of the valid rate domain. At r = -1
// the compounding factor (1+r) collapses to zero and every discounting
// formula degenerates; below it the factor changes sign each period.
const MinRate = -1.0

// ValidatePeriods verifies that a period count is finite and strictly
// positive. Fractional counts are legal (e.g. 2.5 years in CAGR).
//
// Contract:
//   - n must satisfy n > 0 and be neither NaN nor ±Inf.
//
// Complexity: O(1).
func ValidatePeriods(n float64) error {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%w: period count must be finite, got %v", ErrInvalidInput, n)
	}
	if n <= 0 {
		return fmt.Errorf("%w: period count must be positive, got %v", ErrInvalidInput, n)
	}

	return nil
}

// ValidateRate verifies that a per-period rate is finite and lies strictly
// above MinRate. Rates are decimal fractions: 0.05 means 5%, -0.25 means a
// 25% per-period loss.
//
// Contract:
//   - r must satisfy r > -1 and be neither NaN nor ±Inf.
//
// Complexity: O(1).
func ValidateRate(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: rate must be finite, got %v", ErrInvalidInput, r)
	}
	if r <= MinRate {
		return fmt.Errorf("%w: rate must exceed %v, got %v", ErrInvalidInput, MinRate, r)
	}

	return nil
}

// ValidateFinite verifies that every supplied value is an ordinary float64
// (neither NaN nor ±Inf). Formula packages call it on free-form scalar
// arguments (amounts, costs, earnings) whose sign is otherwise unrestricted.
//
// Complexity: O(k) for k values.
func ValidateFinite(vals ...float64) error {
	var (
		i int     // loop index
		v float64 // current value under validation
	)
	for i = 0; i < len(vals); i++ { // scan each scalar argument
		v = vals[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: argument %d must be finite, got %v", ErrInvalidInput, i, v)
		}
	}

	return nil
}

// ValidateCashFlows verifies the shape of a cash-flow sequence:
//   - at least MinCashFlows entries,
//   - every entry finite.
//
// Sign conventions are NOT enforced here; solvers that require a sign change
// (IRR) layer ValidateSignChange on top.
//
// Complexity: O(n).
func ValidateCashFlows(cashflows []float64) error {
	// Stage 1: cardinality.
	if len(cashflows) < MinCashFlows {
		return fmt.Errorf("%w: need at least %d cash flows, got %d",
			ErrInvalidInput, MinCashFlows, len(cashflows))
	}

	// Stage 2: finiteness of every entry.
	var (
		i int     // loop index
		v float64 // current cash flow
	)
	for i = 0; i < len(cashflows); i++ { // scan the full sequence
		v = cashflows[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: cash flow %d must be finite, got %v", ErrInvalidInput, i, v)
		}
	}

	return nil
}

// ValidateSignChange verifies that a cash-flow sequence contains at least one
// strict sign change among its non-zero entries. Without one, the NPV curve
// is monotone in the discount factor and no internal rate of return exists.
//
// Contract:
//   - cashflows has already passed ValidateCashFlows.
//
// Complexity: O(n).
func ValidateSignChange(cashflows []float64) error {
	var (
		i    int     // loop index
		v    float64 // current cash flow
		prev float64 // sign carrier: last non-zero entry seen
	)
	for i = 0; i < len(cashflows); i++ { // scan for an inflow/outflow flip
		v = cashflows[i]
		if v == 0 {
			continue // zeros carry no sign information
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			return nil // found a strict sign change
		}
		prev = v
	}

	return fmt.Errorf("%w: cash flows must change sign at least once", ErrInvalidInput)
}

// SafeDivide divides numerator by denominator, refusing exact zero
// denominators instead of propagating ±Inf or NaN into downstream formulas.
//
// Contract:
//   - denominator == 0.0 (exact comparison) yields ErrDivisionByZero.
//   - No tolerance is applied: tiny denominators are legal and produce
//     proportionally large quotients, which is the mathematically honest answer.
//
// Complexity: O(1).
func SafeDivide(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, fmt.Errorf("%w: denominator is zero", ErrDivisionByZero)
	}

	return numerator / denominator, nil
}
