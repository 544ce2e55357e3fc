// Package fincore defines the numeric conventions shared by every formula
// in finmath: input validation, guarded division, decimal rounding, and the
// sentinel error taxonomy.
//
// 🚀 What is fincore?
//
//	The one place where the library's numeric contract lives:
//	  • Rates are per-period decimal fractions (0.05 means 5%), valid above -1.0
//	  • Period counts are strictly positive
//	  • Cash-flow sequences carry at least two finite entries
//	  • Division by an exact 0.0 is an error, never an Inf
//	  • Money-shaped outputs round half away from zero at a documented decimal
//
// ✨ Key pieces:
//   - ValidatePeriods / ValidateRate / ValidateFinite - scalar domain checks
//   - ValidateCashFlows / ValidateSignChange - sequence shape checks
//   - SafeDivide - division with an explicit DivisionByZero signal
//   - RoundTo / CeilTo - decimal rounding used by tabulated results
//   - ErrInvalidInput, ErrDivisionByZero, ErrNonConvergent,
//     ErrDivergedOutOfDomain - the four terminal outcomes any formula can take
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/finmath/fincore"
//
//	if err := fincore.ValidateRate(r); err != nil {
//	  return 0, err // wraps fincore.ErrInvalidInput
//	}
//	q, err := fincore.SafeDivide(total, income)
//
// Every helper is a pure function over its arguments: no state, no logging,
// no panics on user input. Formula packages wrap these sentinels with their
// own context via fmt.Errorf("%w: ...") so errors.Is keeps working.
package fincore
