// Package finmath is your toolbox of closed-form financial mathematics -
// from single-line ratios to amortization schedules and an iterative
// IRR root-finder.
//
// 🚀 What is finmath?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Time value of money: present/future value, NPV, compound interest,
//		  discount-factor tables, CAGR, the rule of 72
//		• Investment metrics: ROI, leverage ratio, WACC, profitability index,
//		  payback period
//		• Loans: amortized payment and full period-by-period schedules
//		• Solvers: Internal Rate of Return via safeguarded Newton iteration
//
// ✨ Why choose finmath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit validation, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps, double-precision floats throughout
//   - Deterministic – identical inputs always produce identical outputs
//
// Under the hood, everything is organized under five subpackages:
//
//	fincore/ - shared numeric conventions: validation, rounding, error taxonomy
//	tvm/     - time-value-of-money formulas (PV, FV, NPV, CI, DF, CAGR, R72)
//	irr/     - Internal Rate of Return solver (Newton with safeguards)
//	ratio/   - investment ratios and metrics (ROI, WACC, PI, payback, leverage)
//	amort/   - amortized loan payments and schedules
//
// Every rate in the public API is a per-period decimal fraction (0.05 means 5%),
// and every formula validates its inputs up front, returning one of the four
// shared sentinel errors instead of NaN surprises.
//
// Quick taste:
//
//	rate, err := irr.IRR([]float64{-100, 39, 59, 55, 20}, nil)
//	// rate ≈ 0.2809 (28.09% per period), err == nil
//
// Dive into the per-package doc.go files for formulas, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/finmath
package finmath
