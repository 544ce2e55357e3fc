// SPDX-License-Identifier: MIT
// Package: finmath/ratio
//
// Package ratio provides the investment-metric formulas: return on
// investment, leverage ratio, weighted average cost of capital,
// profitability index, and payback period.
//
// 🚀 What are these metrics?
//
//	Where finmath/tvm moves money across time, this package condenses a
//	position or a project into a single comparable figure:
//	  • ROI                - how much did the investment return per unit cost
//	  • LeverageRatio      - obligations relative to the income carrying them
//	  • WACC               - the blended, tax-adjusted cost of a firm's capital
//	  • ProfitabilityIndex - discounted inflows per unit of initial outlay
//	  • PaybackPeriod      - how long until cumulative inflows cover the outlay
//
// ✨ Key features:
//   - pure functions over float64, no hidden rounding anywhere
//   - rates and results as decimal fractions: 0.049 means 4.9%
//   - strict validation via finmath/fincore; degenerate denominators are
//     reported as errors, never smuggled out as ±Inf
//   - deterministic: identical inputs yield bit-identical outputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/finmath/ratio"
//
//	// Blended cost of capital: 600000 equity at 6%, 400000 debt at 5%,
//	// 35% tax shield on the debt side.
//	w, err := ratio.WACC(600000, 400000, 0.06, 0.05, 0.35) // 0.049
//
//	// Is the project worth more than it costs, discounted at 10%?
//	pi, err := ratio.ProfitabilityIndex(0.10, []float64{-40000, 18000, 12000, 10000, 9000, 6000})
//
// Errors:
//   - fincore.ErrInvalidInput   - malformed amounts, rates, sequences, or a
//     payback that never happens
//   - fincore.ErrDivisionByZero - zero cost, income, capital, or outlay
//
// Performance: every function is O(1) or O(n) in the cash-flow length with
// no allocations.
package ratio
