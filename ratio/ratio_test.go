// Package ratio_test contains unit tests for the single-shot investment
// metrics. The focus is on strict sentinel errors, canonical numeric
// vectors, and determinism.
package ratio_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/finmath/fincore"
	"github.com/katalvlaran/finmath/ratio"
)

// almostEqual reports |got-want| <= tol; tests use it for vectors whose
// arithmetic is not bit-exact.
func almostEqual(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

// -----------------------------------------------------------------------------
// 1) ROI: canonical vector, sign conventions, error taxonomy
// -----------------------------------------------------------------------------

func TestROI_CanonicalVector(t *testing.T) {
	// Outlay recorded as a negative flow, earnings 60000 → 9.09% return.
	got, err := ratio.ROI(-55000, 60000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 0.0909, 1e-4) {
		t.Fatalf("want ≈0.0909, got %v", got)
	}
}

func TestROI_SignConventions(t *testing.T) {
	t.Run("positive-cost ledgers agree with negative-cost ledgers", func(t *testing.T) {
		neg, err := ratio.ROI(-55000, 60000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pos, err := ratio.ROI(55000, 60000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if neg != pos {
			t.Fatalf("cost magnitude must decide: %v vs %v", neg, pos)
		}
	})

	t.Run("earnings below cost → negative return", func(t *testing.T) {
		got, err := ratio.ROI(-1000, 900)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, -0.1, 1e-12) {
			t.Fatalf("want -0.1, got %v", got)
		}
	})

	t.Run("total loss → exactly -1", func(t *testing.T) {
		got, err := ratio.ROI(-1000, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != -1 {
			t.Fatalf("want -1, got %v", got)
		}
	})
}

func TestROI_StrictSentinels(t *testing.T) {
	t.Run("zero cost → ErrDivisionByZero", func(t *testing.T) {
		_, err := ratio.ROI(0, 60000)
		if !errors.Is(err, fincore.ErrDivisionByZero) {
			t.Fatalf("want ErrDivisionByZero, got %v", err)
		}
	})

	t.Run("NaN earnings → ErrInvalidInput", func(t *testing.T) {
		_, err := ratio.ROI(-55000, math.NaN())
		if !errors.Is(err, fincore.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})
}

// -----------------------------------------------------------------------------
// 2) LeverageRatio: canonical vector and error taxonomy
// -----------------------------------------------------------------------------

func TestLeverageRatio_CanonicalVector(t *testing.T) {
	// 25 liabilities + 10 debts over 20 income → 1.75, exact in float64.
	got, err := ratio.LeverageRatio(25, 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.75 {
		t.Fatalf("want 1.75, got %v", got)
	}
}

func TestLeverageRatio_StrictSentinels(t *testing.T) {
	t.Run("zero income → ErrDivisionByZero", func(t *testing.T) {
		_, err := ratio.LeverageRatio(25, 10, 0)
		if !errors.Is(err, fincore.ErrDivisionByZero) {
			t.Fatalf("want ErrDivisionByZero, got %v", err)
		}
	})

	t.Run("negative obligations → ErrInvalidInput", func(t *testing.T) {
		_, err := ratio.LeverageRatio(-25, 10, 20)
		if !errors.Is(err, fincore.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})

	t.Run("+Inf income → ErrInvalidInput", func(t *testing.T) {
		_, err := ratio.LeverageRatio(25, 10, math.Inf(1))
		if !errors.Is(err, fincore.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})
}

// -----------------------------------------------------------------------------
// 3) WACC: canonical vector, degenerate structures, domain guards
// -----------------------------------------------------------------------------

func TestWACC_CanonicalVector(t *testing.T) {
	// 600000 equity at 6%, 400000 debt at 5%, 35% tax → 4.9% blended.
	got, err := ratio.WACC(600000, 400000, 0.06, 0.05, 0.35)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 0.049, 1e-12) {
		t.Fatalf("want ≈0.049, got %v", got)
	}
}

func TestWACC_DegenerateStructures(t *testing.T) {
	t.Run("all-equity firm → cost of equity", func(t *testing.T) {
		got, err := ratio.WACC(1000000, 0, 0.08, 0.05, 0.35)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 0.08, 1e-12) {
			t.Fatalf("want 0.08, got %v", got)
		}
	})

	t.Run("all-debt firm → shielded cost of debt", func(t *testing.T) {
		got, err := ratio.WACC(0, 1000000, 0.08, 0.05, 0.35)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 0.0325, 1e-12) {
			t.Fatalf("want 0.0325, got %v", got)
		}
	})

	t.Run("no capital at all → ErrDivisionByZero", func(t *testing.T) {
		_, err := ratio.WACC(0, 0, 0.08, 0.05, 0.35)
		if !errors.Is(err, fincore.ErrDivisionByZero) {
			t.Fatalf("want ErrDivisionByZero, got %v", err)
		}
	})
}

func TestWACC_DomainGuards(t *testing.T) {
	t.Run("negative equity → ErrInvalidInput", func(t *testing.T) {
		_, err := ratio.WACC(-1, 400000, 0.06, 0.05, 0.35)
		if !errors.Is(err, fincore.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})

	t.Run("tax rate above 1 → ErrInvalidInput", func(t *testing.T) {
		_, err := ratio.WACC(600000, 400000, 0.06, 0.05, 1.35)
		if !errors.Is(err, fincore.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})

	t.Run("cost of debt at -100% → ErrInvalidInput", func(t *testing.T) {
		_, err := ratio.WACC(600000, 400000, 0.06, -1, 0.35)
		if !errors.Is(err, fincore.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})

	t.Run("NaN tax rate → ErrInvalidInput", func(t *testing.T) {
		_, err := ratio.WACC(600000, 400000, 0.06, 0.05, math.NaN())
		if !errors.Is(err, fincore.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})
}
