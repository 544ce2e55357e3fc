// SPDX-License-Identifier: MIT
// Package: finmath/irr
//
// types.go - solver options, deterministic defaults, and their validation.

package irr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultMaxIterations bounds the Newton/bisection loop. A thousand
	// iterations is far beyond what well-posed inputs need (Newton is
	// quadratic near a simple root) yet cheap enough as a hard stop.
	DefaultMaxIterations = 1000

	// DefaultEpsilon is the absolute convergence threshold on |NPV(r)| and
	// the usability threshold on the derivative magnitude.
	DefaultEpsilon = 1e-7

	// DefaultInitialGuess starts the search at 10%, a sensible center of
	// gravity for real-world project returns.
	DefaultInitialGuess = 0.1
)

// Options configures the IRR solver.
//
// Fields:
//   - MaxIterations - iteration budget; the solver fails with
//     fincore.ErrNonConvergent when the budget is exhausted.
//   - Epsilon       - absolute tolerance: the solver accepts r once
//     |NPV(r)| < Epsilon, and treats |NPV'(r)| < Epsilon as a stall.
//   - InitialGuess  - starting rate (decimal fraction, must exceed -1).
//   - LowerBound, UpperBound - optional bracket. NaN (the default) means
//     unset. When both are set the solver never leaves [LowerBound,
//     UpperBound]: Newton steps that would escape fall back to bisection,
//     so divergence below -100% cannot occur. The bracket must straddle a
//     sign change of the NPV curve.
//
// Zero value note: Options{} is NOT usable (Epsilon 0 would reject every
// candidate); always start from DefaultOptions().
type Options struct {
	MaxIterations int
	Epsilon       float64
	InitialGuess  float64
	LowerBound    float64
	UpperBound    float64
}

// DefaultOptions returns the documented defaults: 1000 iterations, epsilon
// 1e-7, initial guess 10%, no bracket.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
		InitialGuess:  DefaultInitialGuess,
		LowerBound:    math.NaN(), // unset
		UpperBound:    math.NaN(), // unset
	}
}

// bracketed reports whether both bounds are set. Mixed states (one bound
// set, one NaN) are rejected by validateOptions before this is consulted.
func (o Options) bracketed() bool {
	return !math.IsNaN(o.LowerBound) && !math.IsNaN(o.UpperBound)
}

// validateOptions checks internal consistency of Options without touching
// the cash flows.
//
// Contract:
//   - MaxIterations >= 1.
//   - Epsilon > 0 and finite.
//   - InitialGuess finite and > -1 (a valid rate).
//   - Bounds: both NaN (unbracketed), or both finite with
//     -1 < LowerBound < UpperBound.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	// Stage 1: iteration budget.
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: MaxIterations must be at least 1, got %d",
			fincore.ErrInvalidInput, o.MaxIterations)
	}

	// Stage 2: tolerance.
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon <= 0 {
		return fmt.Errorf("%w: Epsilon must be a positive finite value, got %v",
			fincore.ErrInvalidInput, o.Epsilon)
	}

	// Stage 3: starting point must itself be a valid rate.
	if err := fincore.ValidateRate(o.InitialGuess); err != nil {
		return err
	}

	// Stage 4: bracket shape. NaN marks "unset"; setting only one bound is
	// ambiguous and rejected outright.
	loSet, hiSet := !math.IsNaN(o.LowerBound), !math.IsNaN(o.UpperBound)
	if loSet != hiSet {
		return fmt.Errorf("%w: bracket requires both bounds, got lower=%v upper=%v",
			fincore.ErrInvalidInput, o.LowerBound, o.UpperBound)
	}
	if loSet {
		if err := fincore.ValidateRate(o.LowerBound); err != nil {
			return err
		}
		if err := fincore.ValidateRate(o.UpperBound); err != nil {
			return err
		}
		if o.LowerBound >= o.UpperBound {
			return fmt.Errorf("%w: bracket must satisfy lower < upper, got [%v, %v]",
				fincore.ErrInvalidInput, o.LowerBound, o.UpperBound)
		}
	}

	return nil
}
