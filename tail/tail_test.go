package tail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recurse/core"
	"github.com/katalvlaran/recurse/linear"
	"github.com/katalvlaran/recurse/multiple"
	"github.com/katalvlaran/recurse/tail"
)

// TestFactorial_MatchesLinear checks factorial(n) == factorialTail(n, 1)
// across the exact int64 range of small n.
func TestFactorial_MatchesLinear(t *testing.T) {
	for n := 0; n <= 12; n++ {
		want, err := linear.Factorial(n)
		require.NoError(t, err)
		got, err := tail.Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

// TestLoops_MatchTailEntryPoints checks the conversion law for each pair.
func TestLoops_MatchTailEntryPoints(t *testing.T) {
	for n := 0; n <= 20; n++ {
		f, err := tail.Factorial(n)
		require.NoError(t, err)
		fl, err := tail.FactorialLoop(n)
		require.NoError(t, err)
		assert.Equal(t, f, fl, "factorial n=%d", n)

		s, err := tail.Sum(n)
		require.NoError(t, err)
		sl, err := tail.SumLoop(n)
		require.NoError(t, err)
		assert.Equal(t, s, sl, "sum n=%d", n)
		assert.Equal(t, int64(n*(n+1)/2), s, "closed form n=%d", n)

		fib, err := tail.Fibonacci(n)
		require.NoError(t, err)
		fibl, err := tail.FibonacciLoop(n)
		require.NoError(t, err)
		assert.Equal(t, fib, fibl, "fibonacci n=%d", n)

		naive, err := multiple.Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, naive, fib, "tail Fibonacci agrees with naive n=%d", n)
	}
}

func TestKnownValues(t *testing.T) {
	f, err := tail.Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, int64(120), f)

	s, err := tail.Sum(100)
	require.NoError(t, err)
	assert.Equal(t, int64(5050), s)

	fib, err := tail.Fibonacci(10)
	require.NoError(t, err)
	assert.Equal(t, int64(55), fib)

	deep, err := tail.Sum(core.MaxDepth)
	require.NoError(t, err)
	assert.Equal(t, int64(core.MaxDepth*(core.MaxDepth+1)/2), deep)
}

func TestErrors(t *testing.T) {
	for name, fn := range map[string]func(int) (int64, error){
		"Factorial":     tail.Factorial,
		"Sum":           tail.Sum,
		"Fibonacci":     tail.Fibonacci,
		"FactorialLoop": tail.FactorialLoop,
		"SumLoop":       tail.SumLoop,
		"FibonacciLoop": tail.FibonacciLoop,
	} {
		_, err := fn(-1)
		assert.ErrorIs(t, err, core.ErrInvalidInput, name)
	}

	_, err := tail.Factorial(core.MaxDepth + 1)
	assert.ErrorIs(t, err, core.ErrDepthExceeded)
	_, err = tail.Sum(core.MaxDepth + 1)
	assert.ErrorIs(t, err, core.ErrDepthExceeded)

	big, err := tail.SumLoop(1_000_000)
	require.NoError(t, err, "loop sibling has no depth ceiling")
	assert.Equal(t, int64(500000500000), big)
}
