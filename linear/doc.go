// Package linear implements linear recursion: every call reduces a single
// number or sequence position by one step and combines its own term with
// the result of exactly one recursive call.
//
// What:
//
//   - Factorial:       n! with base n ≤ 1 → 1.
//   - ArraySum:        sum of a slice, base index == len → 0.
//   - CountDigits:     decimal digits of n ≥ 0, base n < 10 → 1.
//   - SumDigits:       decimal digit sum of n ≥ 0.
//   - FindMax:         maximum element, base index == len−1.
//   - Countdown:       n, n−1, …, 1.
//   - DecimalToBinary: base-2 rendering of n ≥ 0 by repeated halving.
//
// Each recursive form has an iterative sibling (FactorialIterative,
// ArraySumIterative, FindMaxIterative) for inputs whose size is not
// bounded in practice.
//
// Complexity:
//
//   - Time:   O(n) calls for every function (O(log₁₀ n) for the digit
//     functions, O(log₂ n) for DecimalToBinary).
//   - Memory: O(depth) stack frames; iterative siblings use O(1).
//
// Errors:
//
//   - core.ErrInvalidInput   negative n, or an index outside the slice.
//   - core.ErrEmptyInput     FindMax on an empty slice.
//   - core.ErrDepthExceeded  recursion depth above core.MaxDepth.
//
// Overflow:
//
//	Results are int64 (or the slice element type) and wrap silently.
//	Factorial(20) = 2432902008176640000 is the last exact value;
//	Factorial(21) wraps to -4249290049419214848. Use package checked for
//	an ErrOverflow instead.
package linear
