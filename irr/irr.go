// SPDX-License-Identifier: MIT
// Package: finmath/irr
//
// irr.go - Newton's method with an optional bisection safeguard.
//
// Design:
//   - evalNPV computes NPV and its derivative in one O(n) pass over the
//     flows using the reciprocal x = 1/(1+r); no math.Pow in the loop.
//   - newtonSolve is the fast unbracketed path: it either converges or
//     reports exactly why it could not (stall, divergence, budget).
//   - bisectSolve is the safeguarded path: every iterate stays inside a
//     user-supplied bracket, bisection replaces any unusable Newton step.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   - Branch on fincore.ErrNonConvergent vs fincore.ErrDivergedOutOfDomain:
//     the first wants a different guess, the second wants a bracket.
//   - A multi-sign-change flow has several IRRs; the solver returns the one
//     its iterates reach. Bracket to select a specific root.
//   - Keep Epsilon absolute: it thresholds NPV in currency units, so scale
//     expectations with the size of the flows.

package irr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// IRR solves NPV(r) = 0 for the internal rate of return of cashflows.
//
// Description:
//
//	NPV(r) = Σ cashflows[t] / (1+r)^t over t = 0..len-1. IRR finds the
//	rate r* where this sum crosses zero, iterating from Options.InitialGuess
//	with Newton's method. With a bracket configured, iterates are confined
//	to [LowerBound, UpperBound] and bisection guarantees progress whenever
//	the Newton step misbehaves.
//
// Algorithm Outline (unbracketed):
//  1. Validate options, then flows: at least two finite entries with at
//     least one sign change (otherwise no root exists).
//  2. r = InitialGuess. Per iteration, evaluate f = NPV(r) and f' in one pass.
//  3. |f| < Epsilon          → converged, return r unrounded.
//  4. |f'| < Epsilon         → stalled on a flat curve, ErrNonConvergent.
//  5. next = r - f/f'. next ≤ -1 → ErrDivergedOutOfDomain; a non-finite
//     next → ErrNonConvergent.
//  6. Budget exhausted without |f| < Epsilon → ErrNonConvergent.
//
// With opts == nil the documented defaults apply (guess 10%, epsilon 1e-7,
// 1000 iterations, no bracket).
//
// Returns the converged rate as a decimal fraction (0.1882... is 18.82%).
// The result is deterministic: same flows and options, bit-identical rate.
//
// Errors:
//   - fincore.ErrInvalidInput        - bad options, malformed flows, missing
//     sign change, or a bracket that does not straddle a root.
//   - fincore.ErrNonConvergent       - stall, non-finite step, or exhausted
//     iteration budget.
//   - fincore.ErrDivergedOutOfDomain - an unbracketed Newton step landed at
//     or below -100%.
//
// Complexity: O(MaxIterations · n) time, O(1) extra space.
func IRR(cashflows []float64, opts *Options) (float64, error) {
	// 1) Resolve configuration; nil selects the documented defaults.
	var cfg Options
	if opts != nil {
		cfg = *opts
	} else {
		cfg = DefaultOptions()
	}
	if err := validateOptions(cfg); err != nil {
		return 0, err
	}

	// 2) Validate the flow: shape first, then the root-existence precondition.
	if err := fincore.ValidateCashFlows(cashflows); err != nil {
		return 0, err
	}
	if err := fincore.ValidateSignChange(cashflows); err != nil {
		return 0, err
	}

	// 3) Dispatch on bracketing mode.
	if cfg.bracketed() {
		return bisectSolve(cashflows, cfg)
	}

	return newtonSolve(cashflows, cfg)
}

// evalNPV evaluates f(r) = Σ cf[t]·x^t and f'(r) = -x·Σ t·cf[t]·x^t in a
// single pass, where x = 1/(1+r) is the per-period discount multiplier.
//
// Contract: r > -1, so x is finite and positive.
//
// Complexity: O(n) time, O(1) space.
func evalNPV(cashflows []float64, rate float64) (value, slope float64) {
	var (
		x        float64 // reciprocal compounding factor 1/(1+rate)
		factor   float64 // x^t, advanced one multiply per period
		weighted float64 // Σ t·cf[t]·x^t, the derivative accumulator
		t        int     // period index
	)
	x = 1 / (1 + rate)
	factor = 1
	for t = 0; t < len(cashflows); t++ { // one pass, both sums
		value += cashflows[t] * factor
		weighted += float64(t) * cashflows[t] * factor
		factor *= x
	}
	slope = -weighted * x // d/dr of cf·(1+r)^(-t) is -t·cf·x^(t+1)

	return value, slope
}

// newtonSolve runs the unbracketed Newton iteration from cfg.InitialGuess.
//
// Complexity: O(cfg.MaxIterations · n).
func newtonSolve(cashflows []float64, cfg Options) (float64, error) {
	var (
		r     float64 // current iterate
		f     float64 // NPV at r
		slope float64 // NPV'(r)
		next  float64 // Newton candidate
		i     int     // iteration counter
	)
	r = cfg.InitialGuess
	for i = 0; i < cfg.MaxIterations; i++ {
		// 1) Evaluate the curve and test convergence first.
		f, slope = evalNPV(cashflows, r)
		if math.Abs(f) < cfg.Epsilon {
			return r, nil
		}

		// 2) A flat derivative cannot produce a meaningful step.
		if math.Abs(slope) < cfg.Epsilon {
			return 0, fmt.Errorf("%w: derivative vanished at rate %v after %d iterations",
				fincore.ErrNonConvergent, r, i)
		}

		// 3) Take the Newton step and keep it inside the model's domain.
		next = r - f/slope
		if next <= fincore.MinRate {
			return 0, fmt.Errorf("%w: step reached rate %v at iteration %d",
				fincore.ErrDivergedOutOfDomain, next, i)
		}
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, fmt.Errorf("%w: step produced a non-finite rate at iteration %d",
				fincore.ErrNonConvergent, i)
		}
		r = next
	}

	return 0, fmt.Errorf("%w: no root within %d iterations (last rate %v)",
		fincore.ErrNonConvergent, cfg.MaxIterations, r)
}

// bisectSolve runs Newton confined to [cfg.LowerBound, cfg.UpperBound],
// falling back to bisection whenever the Newton step is unusable. The
// bracket must straddle a sign change of the NPV curve; it then shrinks
// monotonically around a root, so iterates cannot leave the domain.
//
// Complexity: O(cfg.MaxIterations · n).
func bisectSolve(cashflows []float64, cfg Options) (float64, error) {
	var (
		lo, hi float64 // current bracket
		flo    float64 // NPV at the live lower end, the loop's sign reference
		fhi    float64 // NPV at the entry upper end, straddle check only
		r      float64 // current iterate
		f      float64 // NPV at r
		slope  float64 // NPV'(r)
		next   float64 // candidate for the following iterate
		i      int     // iteration counter
	)
	lo, hi = cfg.LowerBound, cfg.UpperBound

	// 1) The bracket ends may already be roots; otherwise they must differ
	//    in sign for a root to be certain inside.
	flo, _ = evalNPV(cashflows, lo)
	if math.Abs(flo) < cfg.Epsilon {
		return lo, nil
	}
	fhi, _ = evalNPV(cashflows, hi)
	if math.Abs(fhi) < cfg.Epsilon {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, fmt.Errorf("%w: bracket [%v, %v] does not straddle a sign change of NPV",
			fincore.ErrInvalidInput, lo, hi)
	}

	// 2) Start at the guess when it lies inside, at the midpoint otherwise.
	r = cfg.InitialGuess
	if r <= lo || r >= hi {
		r = (lo + hi) / 2
	}

	for i = 0; i < cfg.MaxIterations; i++ {
		// 3) Evaluate and test convergence first.
		f, slope = evalNPV(cashflows, r)
		if math.Abs(f) < cfg.Epsilon {
			return r, nil
		}

		// 4) Shrink the bracket around the root using the sign of f.
		if (f > 0) == (flo > 0) {
			lo, flo = r, f
		} else {
			hi = r
		}

		// 5) Prefer the Newton step; bisect when the derivative is flat or
		//    the step would leave the open bracket.
		next = (lo + hi) / 2
		if math.Abs(slope) >= cfg.Epsilon {
			candidate := r - f/slope
			if candidate > lo && candidate < hi {
				next = candidate
			}
		}
		r = next
	}

	return 0, fmt.Errorf("%w: no root within %d iterations (bracket [%v, %v])",
		fincore.ErrNonConvergent, cfg.MaxIterations, lo, hi)
}
