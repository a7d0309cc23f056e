package multiple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recurse/core"
	"github.com/katalvlaran/recurse/multiple"
)

func TestFibonacci_KnownValues(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		got, err := multiple.Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "Fibonacci(%d)", n)
	}
}

// TestFibonacci_MatchesIterative checks both forms agree for 0..20.
func TestFibonacci_MatchesIterative(t *testing.T) {
	for n := 0; n <= 20; n++ {
		rec, err := multiple.Fibonacci(n)
		require.NoError(t, err)
		iter, err := multiple.FibonacciIterative(n)
		require.NoError(t, err)
		assert.Equal(t, iter, rec, "n=%d", n)
	}
}

func TestFibonacci_Domain(t *testing.T) {
	_, err := multiple.Fibonacci(-1)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = multiple.Fibonacci(core.MaxFibonacciN + 1)
	assert.ErrorIs(t, err, core.ErrLimitExceeded)

	_, err = multiple.FibonacciIterative(-1)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	f92, err := multiple.FibonacciIterative(92)
	require.NoError(t, err)
	assert.Equal(t, int64(7540113804746346429), f92, "largest exact int64 Fibonacci")
}

// TestFibonacci_CostGap asserts the exponential vs linear cost as values.
func TestFibonacci_CostGap(t *testing.T) {
	for n := 0; n <= 25; n++ {
		v, st, err := multiple.FibonacciStats(n)
		require.NoError(t, err)

		next, err := multiple.FibonacciIterative(n + 1)
		require.NoError(t, err)
		assert.Equal(t, int(2*next-1), st.Calls, "naive calls for n=%d", n)
		assert.Equal(t, max(n, 1), st.MaxDepth, "naive depth for n=%d", n)

		iv, ist, err := multiple.FibonacciIterativeStats(n)
		require.NoError(t, err)
		assert.Equal(t, v, iv)
		assert.Equal(t, max(n-1, 0), ist.Steps, "iterative steps for n=%d", n)
		assert.Equal(t, 1, ist.Calls)
	}

	_, naive, err := multiple.FibonacciStats(25)
	require.NoError(t, err)
	_, iter, err := multiple.FibonacciIterativeStats(25)
	require.NoError(t, err)
	assert.Greater(t, naive.Calls, 1000*iter.Steps, "exponential must dwarf linear at n=25")
}

func TestBinomial(t *testing.T) {
	cases := []struct {
		n, k int
		want int64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{10, 3, 120},
		{20, 10, 184756},
	}
	for _, tc := range cases {
		got, err := multiple.Binomial(tc.n, tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "C(%d,%d)", tc.n, tc.k)
	}

	_, err := multiple.Binomial(4, 5)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = multiple.Binomial(4, -1)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = multiple.Binomial(-1, 0)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = multiple.Binomial(core.MaxBinomialN+1, 1)
	assert.ErrorIs(t, err, core.ErrLimitExceeded)
}

// TestBinomial_MatchesPascalRow cross-checks the two recursions.
func TestBinomial_MatchesPascalRow(t *testing.T) {
	for n := 0; n <= 15; n++ {
		row, err := multiple.PascalRow(n)
		require.NoError(t, err)
		require.Len(t, row, n+1)
		for k := 0; k <= n; k++ {
			c, err := multiple.Binomial(n, k)
			require.NoError(t, err)
			assert.Equal(t, c, row[k], "C(%d,%d)", n, k)
		}
	}
}

func TestPascalRow(t *testing.T) {
	row, err := multiple.PascalRow(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 6, 4, 1}, row)

	_, err = multiple.PascalRow(-1)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = multiple.PascalRow(core.MaxDepth + 1)
	assert.ErrorIs(t, err, core.ErrDepthExceeded)
}

func TestHanoi_SmallTower(t *testing.T) {
	moves, err := multiple.Hanoi(2)
	require.NoError(t, err)
	assert.Equal(t, []multiple.Move{
		{Disk: 1, From: multiple.PegA, To: multiple.PegB},
		{Disk: 2, From: multiple.PegA, To: multiple.PegC},
		{Disk: 1, From: multiple.PegB, To: multiple.PegC},
	}, moves)
	assert.Equal(t, "disk 2: A -> C", moves[1].String())

	none, err := multiple.Hanoi(0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = multiple.Hanoi(core.MaxHanoiN + 1)
	assert.ErrorIs(t, err, core.ErrLimitExceeded)
}

// TestHanoi_MovesAreLegal replays the moves and checks the rules hold.
func TestHanoi_MovesAreLegal(t *testing.T) {
	for n := 1; n <= 10; n++ {
		moves, err := multiple.Hanoi(n)
		require.NoError(t, err)
		require.Len(t, moves, (1<<n)-1)

		pegs := map[multiple.Peg][]int{multiple.PegA: {}, multiple.PegB: {}, multiple.PegC: {}}
		for d := n; d >= 1; d-- {
			pegs[multiple.PegA] = append(pegs[multiple.PegA], d)
		}
		for i, m := range moves {
			src := pegs[m.From]
			require.NotEmpty(t, src, "move %d takes from empty peg", i)
			disk := src[len(src)-1]
			require.Equal(t, m.Disk, disk, "move %d names the wrong disk", i)
			dst := pegs[m.To]
			if len(dst) > 0 {
				require.Less(t, disk, dst[len(dst)-1], "move %d puts larger on smaller", i)
			}
			pegs[m.From] = src[:len(src)-1]
			pegs[m.To] = append(dst, disk)
		}
		assert.Len(t, pegs[multiple.PegC], n, "all disks end on C")
	}
}
