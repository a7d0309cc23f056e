package tail

import "github.com/katalvlaran/recurse/core"

func checkRecursive(op string, n int) error {
	if err := core.CheckNatural(op, n); err != nil {
		return err
	}

	return core.CheckDepth(op, n)
}

// Factorial returns n! by accumulator recursion.
func Factorial(n int) (int64, error) {
	if err := checkRecursive("tail: Factorial", n); err != nil {
		return 0, err
	}

	return factorialTail(int64(n), 1), nil
}

func factorialTail(n, acc int64) int64 {
	if n <= 1 {
		return acc
	}

	return factorialTail(n-1, n*acc)
}

// FactorialLoop is factorialTail rewritten as a loop.
func FactorialLoop(n int) (int64, error) {
	if err := core.CheckNatural("tail: FactorialLoop", n); err != nil {
		return 0, err
	}

	m, acc := int64(n), int64(1)
	for m > 1 {
		m, acc = m-1, m*acc
	}

	return acc, nil
}

// Sum returns 1 + 2 + … + n by accumulator recursion. Sum(0) == 0.
func Sum(n int) (int64, error) {
	if err := checkRecursive("tail: Sum", n); err != nil {
		return 0, err
	}

	return sumTail(int64(n), 0), nil
}

func sumTail(n, acc int64) int64 {
	if n <= 0 {
		return acc
	}

	return sumTail(n-1, acc+n)
}

// SumLoop is sumTail rewritten as a loop.
func SumLoop(n int) (int64, error) {
	if err := core.CheckNatural("tail: SumLoop", n); err != nil {
		return 0, err
	}

	m, acc := int64(n), int64(0)
	for m > 0 {
		m, acc = m-1, acc+m
	}

	return acc, nil
}

// Fibonacci returns F(n) by carrying the pair (F(i), F(i+1)) forward.
// Linear time, unlike multiple.Fibonacci.
func Fibonacci(n int) (int64, error) {
	if err := checkRecursive("tail: Fibonacci", n); err != nil {
		return 0, err
	}

	return fibonacciTail(n, 0, 1), nil
}

func fibonacciTail(n int, a, b int64) int64 {
	if n == 0 {
		return a
	}

	return fibonacciTail(n-1, b, a+b)
}

// FibonacciLoop is fibonacciTail rewritten as a loop.
func FibonacciLoop(n int) (int64, error) {
	if err := core.CheckNatural("tail: FibonacciLoop", n); err != nil {
		return 0, err
	}

	a, b := int64(0), int64(1)
	for m := n; m > 0; m-- {
		a, b = b, a+b
	}

	return a, nil
}
