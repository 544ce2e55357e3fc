// SPDX-License-Identifier: MIT
// Package: finmath/tvm
//
// Package tvm provides the closed-form time-value-of-money formulas:
// future value, present value, net present value, compound interest,
// discount-factor tables, compound annual growth, and the rule of 72.
//
// 🚀 What is the time value of money?
//
//	A unit of currency today is worth more than the same unit tomorrow,
//	because today's unit can be invested at some rate r. Every formula in
//	this package converts amounts across time using the compounding factor
//	(1+r)^t. It's the arithmetic behind:
//	  • Investment appraisal (NPV of a project's cash flows)
//	  • Savings projections (FV of a deposit, compound interest)
//	  • Growth reporting (CAGR between two balance-sheet dates)
//	  • Back-of-envelope doubling times (rule of 72)
//
// ✨ Key features:
//   - pure functions over float64, full double precision, no hidden rounding
//     (only DiscountFactors rounds, by table convention, upward at 3 decimals)
//   - decimal-fraction rates everywhere: pass 0.05 for 5%
//   - strict validation via finmath/fincore before any arithmetic
//   - deterministic: identical inputs yield bit-identical outputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/finmath/tvm"
//
//	// What is a 1000 deposit worth after 12 periods at 0.5% per period?
//	fv, err := tvm.FutureValue(1000, 0.005, 12) // 1061.677812...
//
//	// Is the project worth funding at a 10% discount rate?
//	npv, err := tvm.NetPresentValue(0.10, []float64{-500000, 200000, 300000, 200000})
//
// Errors:
//   - fincore.ErrInvalidInput   - malformed amounts, rates or period counts
//   - fincore.ErrDivisionByZero - degenerate denominators (zero compounding
//     frequency, zero rate in RuleOf72, zero beginning value in CAGR)
//
// Performance: every function is O(1) or O(n) in the cash-flow length, with
// no allocations beyond the returned slice (DiscountFactors only).
//
// See example_test.go for runnable scenarios.
package tvm
