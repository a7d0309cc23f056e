package multiple

import "github.com/katalvlaran/recurse/core"

// Fibonacci returns F(n) by naive binary recursion.
// Domain 0 ≤ n ≤ core.MaxFibonacciN. Intentionally unmemoized.
func Fibonacci(n int) (int64, error) {
	if err := checkFibonacci("multiple: Fibonacci", n); err != nil {
		return 0, err
	}

	return fibonacci(n), nil
}

func fibonacci(n int) int64 {
	if n <= 1 { // F(0) = 0, F(1) = 1
		return int64(n)
	}

	return fibonacci(n-1) + fibonacci(n-2)
}

// FibonacciStats is Fibonacci with a count of calls and the maximum depth.
// Calls is always 2·F(n+1) − 1 and MaxDepth is max(n, 1).
func FibonacciStats(n int) (int64, core.Stats, error) {
	var st core.Stats
	if err := checkFibonacci("multiple: FibonacciStats", n); err != nil {
		return 0, st, err
	}

	v := fibonacciCounted(n, 1, &st)

	return v, st, nil
}

func fibonacciCounted(n, depth int, st *core.Stats) int64 {
	st.Enter(depth)
	if n <= 1 {
		return int64(n)
	}

	return fibonacciCounted(n-1, depth+1, st) + fibonacciCounted(n-2, depth+1, st)
}

func checkFibonacci(op string, n int) error {
	if err := core.CheckNatural(op, n); err != nil {
		return err
	}

	return core.CheckCeiling(op, n, core.MaxFibonacciN)
}

// FibonacciIterative returns F(n) in O(n) time and O(1) space.
// Domain n ≥ 0; values past F(92) wrap.
func FibonacciIterative(n int) (int64, error) {
	v, _, err := FibonacciIterativeStats(n)

	return v, err
}

// FibonacciIterativeStats is FibonacciIterative with the loop step count,
// max(n−1, 0). Calls and MaxDepth are both 1.
func FibonacciIterativeStats(n int) (int64, core.Stats, error) {
	st := core.Stats{Calls: 1, MaxDepth: 1}
	if err := core.CheckNatural("multiple: FibonacciIterative", n); err != nil {
		return 0, core.Stats{}, err
	}
	if n <= 1 {
		return int64(n), st, nil
	}

	a, b := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
		st.Steps++
	}

	return b, st, nil
}
