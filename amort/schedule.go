// SPDX-License-Identifier: MIT
// Package: finmath/amort
//
// schedule.go expands a loan into its full amortization table. The walk is
// bank-style decimal arithmetic: every money amount rounds to cents, the
// running balance is kept in cents, and the final row absorbs whatever cent
// residue the rounding accumulated so the loan closes at exactly 0.

package amort

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finmath/fincore"
)

// Schedule returns the period-by-period amortization table for a loan: one
// Line per monthly payment, splitting the constant installment (as priced
// by Payment) into interest on the outstanding balance and principal
// repayment. Passing nil opts applies DefaultOptions.
//
// Row semantics:
//   - Interest is the monthly rate applied to the balance entering the
//     period, rounded to cents. With opts.PayAtBeginning the first
//     installment is paid before any interest accrues, so row 1 carries
//     zero interest and repays principal only.
//   - Principal is the installment minus interest; the final row instead
//     repays the entire remaining balance, so its Payment may differ from
//     the other rows by the accumulated rounding residue.
//   - The final Balance is exactly 0.
//
// Contract: on top of Payment's rules, the term must describe a whole
// number of payments (2.5 years is fine at 30 rows; 0.1 years is not).
//
// Returns fincore.ErrInvalidInput or fincore.ErrDivisionByZero on violation.
//
// Complexity: O(n) time and memory in the number of payments.
func Schedule(principal, annualRate, periods float64, opts *Options) ([]Line, error) {
	// 1) Resolve configuration; nil selects the defaults.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err := validateOptions(cfg); err != nil {
		return nil, err
	}
	if err := validateLoan(principal, annualRate, periods); err != nil {
		return nil, err
	}

	// 2) Bound the row count, and require whole rows; the closed form's
	//    tolerance for fractional terms does not carry over to a table.
	count := paymentCount(periods, cfg.Unit)
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if count != math.Trunc(count) {
		return nil, fmt.Errorf("%w: term must be a whole number of payments, got %v", fincore.ErrInvalidInput, count)
	}

	// 3) Price the constant installment once; every row reuses it.
	pmt, err := Payment(principal, annualRate, periods, &cfg)
	if err != nil {
		return nil, err
	}

	// 4) Walk the balance down one payment at a time.
	var (
		n       int     // number of payment rows
		rate    float64 // monthly rate
		lines   []Line  // resulting table
		balance float64 // outstanding principal, kept in cents
		pay     float64 // installment charged this row
		accrued float64 // interest accrued this row
		repaid  float64 // principal retired this row
		t       int     // row index
	)
	n = int(count)
	rate = annualRate / paymentsPerYear
	lines = make([]Line, n)
	balance = principal
	for t = 0; t < n; t++ {
		// Interest accrues on the balance entering the period. An
		// annuity-due pays its first installment before any accrual.
		accrued = fincore.RoundTo(balance*rate, centPlaces)
		if cfg.PayAtBeginning && t == 0 {
			accrued = 0
		}

		// Split the installment; the final row clears the balance instead,
		// absorbing the cent residue of all earlier rounding.
		pay = pmt
		repaid = fincore.RoundTo(pay-accrued, centPlaces)
		if t == n-1 {
			repaid = balance
			pay = fincore.RoundTo(repaid+accrued, centPlaces)
		}

		balance = fincore.RoundTo(balance-repaid, centPlaces)
		lines[t] = Line{
			Period:    t + 1,
			Payment:   pay,
			Interest:  accrued,
			Principal: repaid,
			Balance:   balance,
		}
	}

	return lines, nil
}
