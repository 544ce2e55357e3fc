// SPDX-License-Identifier: MIT
// Package: finmath/fincore
//
// errors.go - sentinel errors shared by every formula package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Formula packages SHOULD attach context using `%w`, keeping the sentinel
//     first: fmt.Errorf("%w: cash-flow sequence too short", fincore.ErrInvalidInput).
//   - Formulas MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// AI-Hints (practical guidance for implementers and LLMs):
//   - Branch with errors.Is in tests and production code; avoid string matching.
//   - Return ONLY these sentinels for validation classes (shape/domain/zero/convergence).
//   - Do NOT stringify parameters into sentinel definitions; use %w wrapping instead.

package fincore

import "errors"

// ErrInvalidInput indicates malformed arguments detected before any
// computation begins: wrong cardinality, a missing sign change, an
// out-of-domain rate, or a non-finite value.
// Always recoverable by the caller supplying corrected input.
// Usage: if errors.Is(err, fincore.ErrInvalidInput) { /* fix the arguments */ }.
var ErrInvalidInput = errors.New("fincore: invalid input")

// ErrDivisionByZero indicates a formula denominator evaluated to exactly 0.0,
// signalling a degenerate input combination (zero income, zero compoundings,
// a zero initial outlay, ...).
// Usage: if errors.Is(err, fincore.ErrDivisionByZero) { /* degenerate inputs */ }.
var ErrDivisionByZero = errors.New("fincore: division by zero")

// ErrNonConvergent indicates an iterative search exhausted its iteration
// budget, or stalled on a near-zero derivative, without meeting its
// convergence criterion. Re-invoking with a different initial guess or a
// wider bracket is the usual remedy.
// Usage: if errors.Is(err, fincore.ErrNonConvergent) { /* retry differently */ }.
var ErrNonConvergent = errors.New("fincore: iteration did not converge")

// ErrDivergedOutOfDomain indicates an iteration step produced a candidate
// rate at or below -100%, where the compounding factor (1+r) stops being
// positive and the discounting model breaks down.
// Usage: if errors.Is(err, fincore.ErrDivergedOutOfDomain) { /* re-bracket */ }.
var ErrDivergedOutOfDomain = errors.New("fincore: iteration left the valid domain")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      fmt.Errorf("%w: rate must exceed -1.0, got %v", ErrInvalidInput, r)
//    This preserves the sentinel for errors.Is while adding deterministic
//    context ("fincore: invalid input: rate must exceed -1.0, got -2").
//
// 2) Priority (tie-break guidance when multiple validations could fail):
//    - ErrInvalidInput     - shape and domain checks run first.
//    - ErrDivisionByZero   - then denominator guards on validated values.
//    - ErrNonConvergent / ErrDivergedOutOfDomain - only iterative solvers
//      surface these, strictly after all up-front validation passed.
//
// 3) Compatibility:
//    These names and messages are stable and form part of the public contract.
//    Add NEW sentinels only under a versioned migration note in doc.go.
