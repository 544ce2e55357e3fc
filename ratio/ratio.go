// SPDX-License-Identifier: MIT
// Package: finmath/ratio
//
// ratio.go - single-shot metrics: ROI, leverage ratio, and WACC.

package ratio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// ROI computes the return on investment as a decimal fraction:
//
//	ROI = (earnings - |cost|) / |cost|
//
// The cost enters by magnitude, so ledgers that record the outlay as a
// negative cash flow (-55000) and reports that quote it positively (55000)
// produce the same answer.
//
// Contract:
//   - cost is any finite non-zero amount.
//   - earnings is any finite amount; earnings below |cost| yield a negative ROI.
//
// Returns the unrounded fraction (0.0909... means a 9.09% return).
//
// Errors:
//   - fincore.ErrInvalidInput   - non-finite arguments.
//   - fincore.ErrDivisionByZero - cost == 0.
//
// Complexity: O(1).
func ROI(cost, earnings float64) (float64, error) {
	// 1) Validate both amounts.
	if err := fincore.ValidateFinite(cost, earnings); err != nil {
		return 0, err
	}

	// 2) Gain per unit of cost; a zero cost has no meaningful return.
	base := math.Abs(cost)

	return fincore.SafeDivide(earnings-base, base)
}

// LeverageRatio relates total obligations to the income that services them:
//
//	LR = (liabilities + debts) / income
//
// Contract:
//   - liabilities and debts are finite, non-negative amounts.
//   - income is any finite non-zero amount.
//
// Returns the unrounded ratio (1.75 means obligations are 175% of income).
//
// Errors:
//   - fincore.ErrInvalidInput   - non-finite or negative obligations.
//   - fincore.ErrDivisionByZero - income == 0.
//
// Complexity: O(1).
func LeverageRatio(liabilities, debts, income float64) (float64, error) {
	// 1) Validate amounts and their signs.
	if err := fincore.ValidateFinite(liabilities, debts, income); err != nil {
		return 0, err
	}
	if liabilities < 0 || debts < 0 {
		return 0, fmt.Errorf("%w: obligations must not be negative, got liabilities=%v debts=%v",
			fincore.ErrInvalidInput, liabilities, debts)
	}

	// 2) Obligations per unit of income.
	return fincore.SafeDivide(liabilities+debts, income)
}

// WACC computes the weighted average cost of capital:
//
//	WACC = E/(E+D)·Re + D/(E+D)·Rd·(1-T)
//
// where E is the market value of equity, D the market value of debt, Re and
// Rd their respective cost rates, and T the corporate tax rate (debt
// interest is tax-deductible, hence the (1-T) shield).
//
// Contract:
//   - equity and debt are finite, non-negative, and not both zero.
//   - costOfEquity and costOfDebt are decimal fractions strictly above -1.
//   - taxRate lies in [0, 1].
//
// Returns the unrounded blended rate (0.049 means 4.9%).
//
// Errors:
//   - fincore.ErrInvalidInput   - non-finite arguments, negative capital,
//     out-of-domain rates, or a tax rate outside [0, 1].
//   - fincore.ErrDivisionByZero - equity+debt == 0.
//
// Complexity: O(1).
func WACC(equity, debt, costOfEquity, costOfDebt, taxRate float64) (float64, error) {
	// 1) Validate the capital structure.
	if err := fincore.ValidateFinite(equity, debt, taxRate); err != nil {
		return 0, err
	}
	if equity < 0 || debt < 0 {
		return 0, fmt.Errorf("%w: capital must not be negative, got equity=%v debt=%v",
			fincore.ErrInvalidInput, equity, debt)
	}

	// 2) Validate the cost rates and the tax shield.
	if err := fincore.ValidateRate(costOfEquity); err != nil {
		return 0, err
	}
	if err := fincore.ValidateRate(costOfDebt); err != nil {
		return 0, err
	}
	if taxRate < 0 || taxRate > 1 {
		return 0, fmt.Errorf("%w: tax rate must lie in [0, 1], got %v",
			fincore.ErrInvalidInput, taxRate)
	}

	// 3) Capital weights; an all-zero structure has no cost of capital.
	equityWeight, err := fincore.SafeDivide(equity, equity+debt)
	if err != nil {
		return 0, err
	}
	debtWeight := 1 - equityWeight

	// 4) Blend the two sides; only debt enjoys the tax shield.
	return equityWeight*costOfEquity + debtWeight*costOfDebt*(1-taxRate), nil
}
