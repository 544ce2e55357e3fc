// SPDX-License-Identifier: MIT
// Package: finmath/amort
//
// Package amort computes amortized loan payments and full repayment
// schedules: the constant monthly installment that retires a principal over
// a fixed term, and the period-by-period split of that installment into
// interest and principal.
//
// 🚀 What is amortization?
//
//	A mortgage or car loan is repaid in equal installments. Early
//	installments are mostly interest; late ones are mostly principal. The
//	installment solves P = PMT·a(n, r) for the annuity factor a, and the
//	schedule tracks the declining balance month by month. It's the
//	arithmetic behind:
//	  • Mortgage and auto-loan quotes
//	  • Loan amortization tables in bank statements
//	  • Interest/principal splits for accounting and tax
//
// ✨ Key features:
//   - terms in years (default) or months, selected by Options.Unit
//   - ordinary annuities and annuity-due (Options.PayAtBeginning), where
//     paying at the start of each period skips one interest accrual
//   - bank-style cents: the installment and every schedule row round to two
//     decimals, and the final row absorbs the rounding residue so the
//     balance ends at exactly 0
//   - strict validation via finmath/fincore; a zero rate is reported as a
//     division by zero, not a NaN payment
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/finmath/amort"
//
//	// 20000 over 5 years at a 7.5% annual rate → 400.76 per month.
//	pmt, err := amort.Payment(20000, 0.075, 5, nil)
//
//	// The full 60-row table behind that number.
//	lines, err := amort.Schedule(20000, 0.075, 5, nil)
//
// Errors:
//   - fincore.ErrInvalidInput   - non-positive principal, malformed rate or
//     term, a term that is not a whole number of payments (Schedule), or a
//     payment count beyond the supported maximum of 12000.
//   - fincore.ErrDivisionByZero - a zero annual rate (the annuity
//     denominator vanishes).
//
// Performance: Payment is O(1); Schedule is O(n) in the number of payments.
package amort
