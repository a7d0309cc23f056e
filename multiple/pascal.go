package multiple

import (
	"fmt"

	"github.com/katalvlaran/recurse/core"
)

// Binomial returns C(n, k) by Pascal's rule.
// Domain 0 ≤ k ≤ n ≤ core.MaxBinomialN.
func Binomial(n, k int) (int64, error) {
	const op = "multiple: Binomial"
	if err := core.CheckNatural(op, n); err != nil {
		return 0, err
	}
	if k < 0 || k > n {
		return 0, fmt.Errorf("%s(%d, %d): k outside [0, n]: %w", op, n, k, core.ErrInvalidInput)
	}
	if err := core.CheckCeiling(op, n, core.MaxBinomialN); err != nil {
		return 0, err
	}

	return binomial(n, k), nil
}

func binomial(n, k int) int64 {
	if k == 0 || k == n { // edges of the triangle
		return 1
	}

	return binomial(n-1, k-1) + binomial(n-1, k)
}

// PascalRow returns row n of Pascal's triangle (n+1 entries).
// Entries wrap once they pass int64, from row 67 on.
func PascalRow(n int) ([]int64, error) {
	const op = "multiple: PascalRow"
	if err := core.CheckNatural(op, n); err != nil {
		return nil, err
	}
	if err := core.CheckDepth(op, n); err != nil {
		return nil, err
	}

	return pascalRow(n), nil
}

func pascalRow(n int) []int64 {
	if n == 0 {
		return []int64{1}
	}

	prev := pascalRow(n - 1)
	row := make([]int64, n+1)
	row[0], row[n] = 1, 1
	for i := 1; i < n; i++ {
		row[i] = prev[i-1] + prev[i]
	}

	return row
}
