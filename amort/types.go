// SPDX-License-Identifier: MIT
// Package: finmath/amort
//
// types.go declares the term-unit enum, the Options knobs shared by Payment
// and Schedule, and the Line row emitted by Schedule.

package amort

import (
	"fmt"

	"github.com/katalvlaran/finmath/fincore"
)

// PeriodUnit selects how the periods argument is interpreted.
type PeriodUnit int

const (
	// Years treats periods as a count of years; the loan runs for
	// periods·12 monthly payments. This is the default.
	Years PeriodUnit = iota
	// Months treats periods as a count of monthly payments directly.
	Months
)

// paymentsPerYear converts a term in years into monthly payments.
const paymentsPerYear = 12.0

// centPlaces is the money precision used for installments and schedule rows.
const centPlaces = 2

// maxPaymentCount caps a loan's installment count at a millennium of monthly
// payments. Longer terms overflow the annuity growth factor at ordinary
// rates and describe no real amortization.
const maxPaymentCount = 12000

// Options configures Payment and Schedule.
//
// The zero value is ready to use: a term in years, paid at the end of each
// period (an ordinary annuity). Pass nil to use it implicitly.
type Options struct {
	// Unit declares whether periods counts years (default) or months.
	Unit PeriodUnit

	// PayAtBeginning switches to an annuity-due: installments fall at the
	// start of each period, so the money accrues one fewer round of
	// interest and the installment is slightly smaller.
	PayAtBeginning bool
}

// DefaultOptions returns the standard configuration:
// a term in years, ordinary annuity.
func DefaultOptions() Options {
	return Options{
		Unit:           Years,
		PayAtBeginning: false,
	}
}

// Line is one row of an amortization schedule: the installment paid in a
// period and how it splits between interest and principal, plus the balance
// left afterwards. Money fields carry two decimals; the final row absorbs
// the rounding residue so its Balance is exactly 0.
type Line struct {
	Period    int     // 1-based payment number
	Payment   float64 // installment paid this period
	Interest  float64 // interest portion of the installment
	Principal float64 // principal portion of the installment
	Balance   float64 // remaining principal after this payment
}

// validateOptions rejects configurations the formulas cannot honor.
func validateOptions(o Options) error {
	switch o.Unit {
	case Years, Months:
		return nil
	default:
		return fmt.Errorf("%w: unknown period unit %d", fincore.ErrInvalidInput, int(o.Unit))
	}
}
