// Package core holds what every algorithm family in recurse shares: the
// error taxonomy, the recursion ceilings, the numeric constraints and the
// call statistics used to compare recursive and iterative siblings.
//
// What:
//
//   - Sentinel errors: ErrInvalidInput, ErrEmptyInput, ErrPrecondition,
//     ErrOverflow, ErrDepthExceeded, ErrLimitExceeded.
//   - Ceilings: MaxDepth bounds any recursion whose depth grows linearly
//     with its input; MaxFibonacciN, MaxBinomialN and MaxHanoiN bound the
//     exponential variants by work rather than depth.
//   - Validators: CheckNatural, CheckDepth, CheckIndex, CheckCeiling. They
//     run before the first recursive call so malformed input never starts
//     a descent.
//   - Stats: call, depth and multiplication counters filled by the *Stats
//     variants of the algorithms.
//
// Overflow policy:
//
//	linear, multiple, tail and divide compute in int64 and wrap on overflow
//	(two's complement). Only package checked reports ErrOverflow.
//	The two modes are never mixed inside a package.
//
// Errors:
//
//	Every failure returned by the library wraps exactly one sentinel from
//	this package. Match with errors.Is:
//
//	if _, err := linear.Factorial(-1); errors.Is(err, core.ErrInvalidInput) {
//		// reject the argument
//	}
package core
