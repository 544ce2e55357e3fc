// SPDX-License-Identifier: MIT
// Package: finmath/amort
//
// amort.go computes the constant installment of an amortized loan. The
// closed form is the annuity payment formula on the monthly rate; the
// annuity-due variant drops one interest accrual from the numerator.
//
// AI-Hints:
//   - Payment(principal, annualRate, periods, nil) is the everyday call:
//     term in years, ordinary annuity, result rounded to cents.
//   - annualRate is a decimal fraction (0.075 = 7.5% per year); the monthly
//     rate is annualRate/12.
//   - A zero annualRate makes the annuity denominator vanish; this surfaces
//     as fincore.ErrDivisionByZero rather than a NaN payment.
//   - Payment accepts fractional payment counts (the closed form is defined
//     for them); Schedule does not, because a table needs whole rows.
//   - Terms are capped at a millennium of monthly payments; beyond that, or
//     when the annuity factor overflows, the call fails with
//     fincore.ErrInvalidInput instead of returning a non-finite payment.

package amort

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// Payment returns the constant per-month installment that retires principal
// over the given term at the given annual rate, rounded to cents.
//
//	PMT = P · r·(1+r)ᵃ / ((1+r)ⁿ − 1)
//
// where r is the monthly rate annualRate/12, n is the number of payments
// (periods·12 when opts.Unit is Years, periods as-is when Months), and a is
// n for an ordinary annuity or n−1 when opts.PayAtBeginning is set. Passing
// nil opts applies DefaultOptions: a term in years, paid at period end.
//
// Contract:
//   - principal must be finite and strictly positive.
//   - annualRate must be finite and > -1; annualRate == 0 degenerates the
//     denominator and returns fincore.ErrDivisionByZero.
//   - periods must be finite and strictly positive; fractional terms are
//     legal here (a 2.5-year loan is 30 payments).
//   - the derived payment count must not exceed 12000 (a millennium of
//     monthly installments) and the growth factor (1+r)ⁿ must stay finite.
//
// Returns fincore.ErrInvalidInput or fincore.ErrDivisionByZero on violation.
//
// Complexity: O(1).
func Payment(principal, annualRate, periods float64, opts *Options) (float64, error) {
	// 1) Resolve configuration; nil selects the defaults.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err := validateOptions(cfg); err != nil {
		return 0, err
	}

	// 2) Screen the loan terms before touching the formula.
	if err := validateLoan(principal, annualRate, periods); err != nil {
		return 0, err
	}

	// 3) The installment count must be finite and within the supported cap.
	count := paymentCount(periods, cfg.Unit)
	if err := validateCount(count); err != nil {
		return 0, err
	}

	// 4) Closed-form installment on the monthly rate, then bank rounding.
	raw, err := installment(principal, annualRate/paymentsPerYear, count, cfg.PayAtBeginning)
	if err != nil {
		return 0, err
	}

	return fincore.RoundTo(raw, centPlaces), nil
}

// installment evaluates the unrounded annuity payment for a per-period rate
// and payment count. payAtBeginning shifts installments to the start of each
// period, which skips exactly one interest accrual in the numerator.
func installment(principal, ratePerPeriod, payments float64, payAtBeginning bool) (float64, error) {
	// 1) An annuity-due accrues interest once less than it pays.
	accruals := payments
	if payAtBeginning {
		accruals--
	}

	// 2) PMT/P = r·(1+r)ᵃ / ((1+r)ⁿ − 1). Both growth terms must stay
	//    finite; a zero rate zeroes the denominator and is reported as such.
	numerator := ratePerPeriod * math.Pow(1+ratePerPeriod, accruals)
	denominator := math.Pow(1+ratePerPeriod, payments) - 1
	if err := fincore.ValidateFinite(numerator, denominator); err != nil {
		return 0, err
	}
	quotient, err := fincore.SafeDivide(numerator, denominator)
	if err != nil {
		return 0, err
	}

	return principal * quotient, nil
}

// paymentCount converts a term into a number of monthly payments.
func paymentCount(periods float64, unit PeriodUnit) float64 {
	if unit == Months {
		return periods
	}

	return periods * paymentsPerYear
}

// validateCount rejects installment counts the formulas cannot represent:
// non-finite unit conversions and counts beyond maxPaymentCount.
func validateCount(count float64) error {
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return fmt.Errorf("%w: payment count must be finite, got %v", fincore.ErrInvalidInput, count)
	}
	if count > maxPaymentCount {
		return fmt.Errorf("%w: payment count %v exceeds %d, the supported maximum",
			fincore.ErrInvalidInput, count, maxPaymentCount)
	}

	return nil
}

// validateLoan rejects loan terms the annuity formula cannot price.
func validateLoan(principal, annualRate, periods float64) error {
	// 1) Principal: finite and strictly positive.
	if err := fincore.ValidateFinite(principal); err != nil {
		return err
	}
	if principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %v", fincore.ErrInvalidInput, principal)
	}

	// 2) Rate: finite, above total loss.
	if err := fincore.ValidateRate(annualRate); err != nil {
		return err
	}

	// 3) Term: finite and strictly positive.
	return fincore.ValidatePeriods(periods)
}
