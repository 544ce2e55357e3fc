// SPDX-License-Identifier: MIT
package irr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/finmath/fincore"
	"github.com/katalvlaran/finmath/irr"
	"github.com/katalvlaran/finmath/tvm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classicFlow is the canonical appraisal vector used across the module's
// tests and examples: a 500000 outlay with three inflows, IRR ≈ 18.82%.
func classicFlow() []float64 {
	return []float64{-500000, 200000, 300000, 200000}
}

// TestIRR_ClassicProject pins the canonical vector and verifies the defining
// round-trip property: NPV evaluated at the returned rate is within epsilon
// of zero.
func TestIRR_ClassicProject(t *testing.T) {
	r, err := irr.IRR(classicFlow(), nil)
	require.NoError(t, err)
	require.InDelta(t, 0.1882, r, 1e-4, "IRR of the classic project")

	npv, err := tvm.NetPresentValue(r, classicFlow())
	require.NoError(t, err)
	assert.Less(t, math.Abs(npv), irr.DefaultEpsilon, "NPV at the IRR must vanish")
}

// TestIRR_TextbookFlow pins a second vector with a different shape: a small
// outlay and a decaying inflow tail, IRR ≈ 28.09%.
func TestIRR_TextbookFlow(t *testing.T) {
	r, err := irr.IRR([]float64{-100, 39, 59, 55, 20}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.2809, r, 1e-4)
}

// TestIRR_GuessOnRoot verifies that a starting point that is already a root
// is returned unchanged: [-100, 230, -132] has NPV exactly zero at 10%.
func TestIRR_GuessOnRoot(t *testing.T) {
	r, err := irr.IRR([]float64{-100, 230, -132}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.1, r, "the default 10% guess is a root of this flow")
}

// TestIRR_Deterministic verifies bit-identical results across repeated runs
// and across nil-versus-explicit default options.
func TestIRR_Deterministic(t *testing.T) {
	first, err := irr.IRR(classicFlow(), nil)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		again, err := irr.IRR(classicFlow(), nil)
		require.NoError(t, err)
		require.Equal(t, first, again, "run %d must be bit-identical", i)
	}

	opts := irr.DefaultOptions()
	explicit, err := irr.IRR(classicFlow(), &opts)
	require.NoError(t, err)
	assert.Equal(t, first, explicit, "nil options must equal DefaultOptions()")
}

// TestIRR_FlowValidation verifies the input taxonomy: shape, finiteness,
// and the sign-change precondition all surface ErrInvalidInput.
func TestIRR_FlowValidation(t *testing.T) {
	_, err := irr.IRR(nil, nil)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "nil flow")

	_, err = irr.IRR([]float64{-100}, nil)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "single entry")

	_, err = irr.IRR([]float64{-100, math.NaN(), 50}, nil)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "NaN entry")

	_, err = irr.IRR([]float64{-100, -50, -25}, nil)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "no sign change, no root")

	_, err = irr.IRR([]float64{100, 50, 25}, nil)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "all inflows, no root")
}

// TestIRR_OptionValidation verifies every option precondition: iteration
// budget, epsilon, guess domain, and bracket shape.
func TestIRR_OptionValidation(t *testing.T) {
	base := irr.DefaultOptions()

	opts := base
	opts.MaxIterations = 0
	_, err := irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "zero iteration budget")

	opts = base
	opts.Epsilon = 0
	_, err = irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "zero epsilon")

	opts = base
	opts.Epsilon = math.NaN()
	_, err = irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "NaN epsilon")

	opts = base
	opts.InitialGuess = -1
	_, err = irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "guess at the -100% boundary")

	opts = base
	opts.LowerBound = 0 // upper left unset
	_, err = irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "one-sided bracket")

	opts = base
	opts.LowerBound, opts.UpperBound = 0.5, 0.1
	_, err = irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput, "inverted bracket")
}

// TestIRR_StalledDerivative verifies the stall path: [10, 1, -1] started at
// 100% has an exactly vanishing derivative, so no step can be taken.
func TestIRR_StalledDerivative(t *testing.T) {
	opts := irr.DefaultOptions()
	opts.InitialGuess = 1.0

	_, err := irr.IRR([]float64{10, 1, -1}, &opts)
	assert.ErrorIs(t, err, fincore.ErrNonConvergent, "flat curve at the guess must stall")
}

// TestIRR_BudgetExhausted verifies the iteration cap: two iterations are not
// enough to bring the classic flow's NPV under epsilon.
func TestIRR_BudgetExhausted(t *testing.T) {
	opts := irr.DefaultOptions()
	opts.MaxIterations = 2

	_, err := irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrNonConvergent, "budget of 2 must be exceeded")
}

// TestIRR_DivergesBelowDomain verifies the divergence guard: for [1, -0.5]
// the first Newton step from 10% lands at -122%, outside the model.
func TestIRR_DivergesBelowDomain(t *testing.T) {
	_, err := irr.IRR([]float64{1, -0.5}, nil)
	assert.ErrorIs(t, err, fincore.ErrDivergedOutOfDomain)
}

// TestIRR_BracketRescuesDivergentFlow verifies the safeguarded mode: the
// same flow that diverges unbracketed converges to its true root -50% once
// a straddling bracket confines the iterates.
func TestIRR_BracketRescuesDivergentFlow(t *testing.T) {
	opts := irr.DefaultOptions()
	opts.LowerBound, opts.UpperBound = -0.9, 0

	r, err := irr.IRR([]float64{1, -0.5}, &opts)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, r, 1e-6, "bracketed solve must find the -50% root")
}

// TestIRR_BracketMustStraddle verifies that a bracket on which NPV does not
// change sign is rejected: no root is certain inside it.
func TestIRR_BracketMustStraddle(t *testing.T) {
	opts := irr.DefaultOptions()
	opts.LowerBound, opts.UpperBound = 0.5, 0.9 // NPV < 0 on both ends

	_, err := irr.IRR(classicFlow(), &opts)
	assert.ErrorIs(t, err, fincore.ErrInvalidInput)
}

// TestIRR_BracketEndpointRoot verifies the endpoint shortcut: when a bracket
// end already satisfies |NPV| < epsilon it is returned as-is.
func TestIRR_BracketEndpointRoot(t *testing.T) {
	opts := irr.DefaultOptions()
	opts.LowerBound, opts.UpperBound = -0.5, 0 // NPV(-0.5) is exactly 0

	r, err := irr.IRR([]float64{1, -0.5}, &opts)
	require.NoError(t, err)
	assert.Equal(t, -0.5, r)
}

// TestIRR_BracketedMatchesNewton verifies both modes agree on a well-posed
// flow when the bracket contains the Newton root.
func TestIRR_BracketedMatchesNewton(t *testing.T) {
	free, err := irr.IRR(classicFlow(), nil)
	require.NoError(t, err)

	opts := irr.DefaultOptions()
	opts.InitialGuess = 0.15
	opts.LowerBound, opts.UpperBound = 0.1, 0.3

	fenced, err := irr.IRR(classicFlow(), &opts)
	require.NoError(t, err)
	assert.InDelta(t, free, fenced, 1e-6, "both modes must land on the same root")
}

// TestIRR_BracketSelectsRoot verifies root selection on a double-root flow:
// [-100, 230, -132] has IRRs at exactly 10% and 20%, and the bracket decides
// which one the solver reports.
func TestIRR_BracketSelectsRoot(t *testing.T) {
	flow := []float64{-100, 230, -132}

	opts := irr.DefaultOptions()
	opts.InitialGuess = 0.05
	opts.LowerBound, opts.UpperBound = 0.02, 0.13
	low, err := irr.IRR(flow, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, low, 1e-6, "left bracket must select the 10% root")

	opts = irr.DefaultOptions()
	opts.InitialGuess = 0.22
	opts.LowerBound, opts.UpperBound = 0.17, 0.28
	high, err := irr.IRR(flow, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, high, 1e-6, "right bracket must select the 20% root")
}

// TestIRR_BracketShrinksFromAbove verifies sustained contraction of the
// upper end: starting far above the root, the iterates walk the upper bound
// down onto the 10% root of a two-flow loan.
func TestIRR_BracketShrinksFromAbove(t *testing.T) {
	opts := irr.DefaultOptions()
	opts.InitialGuess = 0.8
	opts.LowerBound, opts.UpperBound = 0.05, 0.9

	r, err := irr.IRR([]float64{-100, 110}, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, r, 1e-6, "the bracket must contract from above onto the root")
}
