// Package checked is the overflow-reporting mode of recurse. Where the
// other packages wrap silently in int64, every function here returns
// core.ErrOverflow as soon as an intermediate result leaves the int64
// range. The policy holds for the whole package; nothing here wraps.
//
//	linear.Factorial(21)  → -4249290049419214848, nil
//	checked.Factorial(21) → 0, core.ErrOverflow
//
// AddExact and MulExact are the primitives; Factorial, Power and
// Fibonacci are the recursive algorithms rebuilt on top of them.
package checked
