// SPDX-License-Identifier: MIT
// Package: finmath/ratio
//
// cashflow.go - sequence metrics: profitability index and payback period.

package ratio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// ProfitabilityIndex relates the discounted future inflows of a project to
// its initial outlay:
//
//	PI = ( Σ cashflows[t] / (1+rate)^t, t = 1..len-1 ) / |cashflows[0]|
//
// A PI above 1 means the discounted returns exceed the outlay (the project
// adds value at the given rate); below 1 they do not.
//
// Contract:
//   - rate is a decimal fraction strictly above -1.
//   - cashflows has at least two finite entries; cashflows[0] is the outlay
//     and enters by magnitude, the remaining entries are discounted from t=1.
//
// Returns the unrounded index.
//
// Errors:
//   - fincore.ErrInvalidInput   - malformed rate or sequence.
//   - fincore.ErrDivisionByZero - cashflows[0] == 0.
//
// Complexity: O(n) time, O(1) space.
func ProfitabilityIndex(rate float64, cashflows []float64) (float64, error) {
	// 1) Validate the rate and the sequence shape.
	if err := fincore.ValidateRate(rate); err != nil {
		return 0, err
	}
	if err := fincore.ValidateCashFlows(cashflows); err != nil {
		return 0, err
	}

	// 2) Discount the future entries with the reciprocal multiplier.
	var (
		x      float64 // per-period discount multiplier 1/(1+rate)
		factor float64 // x^t, starting at t=1
		sum    float64 // discounted inflow accumulator
		t      int     // period index
	)
	x = 1 / (1 + rate)
	factor = x
	for t = 1; t < len(cashflows); t++ { // skip the outlay at t=0
		sum += cashflows[t] * factor
		factor *= x
	}

	// 3) Index per unit of outlay; a zero outlay has no meaningful index.
	return fincore.SafeDivide(sum, math.Abs(cashflows[0]))
}

// PaybackPeriod reports how many periods a project needs before cumulative
// cash flows recover the initial outlay.
//
// Two modes, selected by the periods argument:
//   - periods == 0: the even-flow shortcut |cashflows[0] / cashflows[1]|,
//     for projects whose future inflows all equal cashflows[1].
//   - periods > 0: a cumulative walk over the sequence. The walk accrues
//     cashflows[0] + cashflows[1] + ... until the running total turns
//     positive at index i, then interpolates inside that period:
//     counter + (cumulative - cashflows[i]) / cashflows[i], where counter
//     has advanced once per non-positive prefix. The walk reads the whole
//     sequence regardless of the periods value.
//
// Contract:
//   - periods is finite and non-negative.
//   - cashflows has at least two finite entries.
//   - In walk mode the flow must actually break even; a sequence that never
//     turns positive has no payback period.
//
// Returns the unrounded period count (3.4210... means mid-fourth period).
//
// Errors:
//   - fincore.ErrInvalidInput   - malformed arguments, or a flow that never
//     breaks even.
//   - fincore.ErrDivisionByZero - the shortcut with cashflows[1] == 0.
//
// Complexity: O(n) time, O(1) space.
func PaybackPeriod(periods float64, cashflows []float64) (float64, error) {
	// 1) Validate the mode selector and the sequence shape.
	if err := fincore.ValidateFinite(periods); err != nil {
		return 0, err
	}
	if periods < 0 {
		return 0, fmt.Errorf("%w: period count must not be negative, got %v",
			fincore.ErrInvalidInput, periods)
	}
	if err := fincore.ValidateCashFlows(cashflows); err != nil {
		return 0, err
	}

	// 2) Even-flow shortcut: outlay divided by the level inflow.
	if periods == 0 {
		q, err := fincore.SafeDivide(cashflows[0], cashflows[1])
		if err != nil {
			return 0, err
		}

		return math.Abs(q), nil
	}

	// 3) Cumulative walk with interpolation in the break-even period.
	var (
		cumulative float64 // running total, starts at the outlay
		counter    float64 // period counter, advanced per non-positive prefix
		i          int     // sequence index
	)
	cumulative = cashflows[0]
	counter = 1
	for i = 1; i < len(cashflows); i++ { // accrue until the total turns positive
		cumulative += cashflows[i]
		if cumulative > 0 {
			// Break-even entry is strictly positive here: the previous total
			// was non-positive, so cashflows[i] > 0.
			frac, err := fincore.SafeDivide(cumulative-cashflows[i], cashflows[i])
			if err != nil {
				return 0, err
			}

			return counter + frac, nil
		}
		counter++
	}

	return 0, fmt.Errorf("%w: cash flows never break even", fincore.ErrInvalidInput)
}
