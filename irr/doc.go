// SPDX-License-Identifier: MIT
// Package: finmath/irr
//
// Package irr computes the internal rate of return of a cash-flow sequence:
// the discount rate at which the sequence's net present value is zero.
//
// 🚀 What is IRR?
//
//	A project that costs money today and pays back over time has some
//	break-even discount rate r* where NPV(r*) = 0. That rate is the
//	project's internal rate of return. Comparing r* against the cost of
//	capital is the classic accept/reject rule in:
//	  • Capital budgeting & project selection
//	  • Private-equity and real-estate deal screening
//	  • Bond yield computations (IRR of the coupon schedule)
//
// ✨ Key features:
//   - Newton's method with analytic derivative, one O(n) pass per iteration
//     (no math.Pow in the hot loop)
//   - optional bracketing: supply [LowerBound, UpperBound] straddling a root
//     and the solver falls back to bisection whenever a Newton step would
//     leave the bracket or the derivative flattens
//   - strict error taxonomy: invalid input, stalled iteration, divergence
//     below -100% are distinct, testable failures (finmath/fincore sentinels)
//   - deterministic: identical inputs produce bit-identical outputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/finmath/irr"
//
//	flow := []float64{-500000, 200000, 300000, 200000}
//
//	// Defaults: guess 10%, epsilon 1e-7, at most 1000 iterations.
//	r, err := irr.IRR(flow, nil)
//
//	// Hard cases: bracket a known sign change of the NPV curve.
//	opts := irr.DefaultOptions()
//	opts.LowerBound, opts.UpperBound = -0.9, 0.9
//	r, err = irr.IRR(flow, &opts)
//
// Errors:
//   - fincore.ErrInvalidInput         - malformed flows, options, or bracket
//   - fincore.ErrNonConvergent        - stalled derivative or budget exhausted
//   - fincore.ErrDivergedOutOfDomain  - an unbracketed step at or below -100%
//
// Performance: O(n) per iteration, O(1) extra space; the iteration count is
// bounded by Options.MaxIterations.
//
// The returned rate is never rounded: NPV evaluated at it stays within
// Options.Epsilon of zero, and callers round for presentation only.
package irr
