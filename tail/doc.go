// Package tail implements tail recursion: the recursive call is the last
// operation and carries an accumulator, so the calling frame has no work
// left once the call returns.
//
// Public entry points take only n and seed the accumulator with the
// identity of the operation (1 for products, 0 for sums); the
// accumulator-carrying functions are unexported.
//
//	Factorial(n) = factorialTail(n, 1)
//	Sum(n)       = sumTail(n, 0)
//	Fibonacci(n) = fibonacciTail(n, 0, 1)
//
// Conversion law:
//
//	A tail-recursive f(x, acc) becomes a loop by turning its parameters
//	into loop variables, its base case into the loop exit, and its tail
//	call f(x', acc') into the assignment x, acc = x', acc'.
//	FactorialLoop, SumLoop and FibonacciLoop are exactly that rewrite and
//	carry no depth ceiling. Go does not eliminate tail calls, so the
//	recursive entry points still use O(n) stack and are bounded by
//	core.MaxDepth.
//
// Errors:
//
//   - core.ErrInvalidInput   n < 0.
//   - core.ErrDepthExceeded  n > core.MaxDepth (recursive entry points only).
//
// Overflow wraps silently, as in package linear.
package tail
