package linear

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/recurse/core"
)

// Factorial returns n! computed as n * Factorial(n-1).
// Domain 0 ≤ n ≤ core.MaxDepth. The result wraps past n = 20.
func Factorial(n int) (int64, error) {
	const op = "linear: Factorial"
	if err := core.CheckNatural(op, n); err != nil {
		return 0, err
	}
	if err := core.CheckDepth(op, n); err != nil {
		return 0, err
	}

	return factorial(int64(n)), nil
}

func factorial(n int64) int64 {
	if n <= 1 { // base case: 0! = 1! = 1
		return 1
	}

	return n * factorial(n-1)
}

// FactorialIterative returns n! with a loop. Domain n ≥ 0, no depth ceiling.
func FactorialIterative(n int) (int64, error) {
	if err := core.CheckNatural("linear: FactorialIterative", n); err != nil {
		return 0, err
	}

	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}

	return result, nil
}

// ArraySum returns the sum of seq. An empty slice sums to zero.
func ArraySum[T core.Number](seq []T) (T, error) {
	return ArraySumFrom(seq, 0)
}

// ArraySumFrom returns seq[index] + seq[index+1] + … + seq[len-1].
// index must lie in [0, len(seq)]; index == len(seq) is the base case.
func ArraySumFrom[T core.Number](seq []T, index int) (T, error) {
	const op = "linear: ArraySumFrom"
	if err := core.CheckIndex(op, index, 0, len(seq)); err != nil {
		return 0, err
	}
	if err := core.CheckDepth(op, len(seq)-index); err != nil {
		return 0, err
	}

	return arraySum(seq, index), nil
}

func arraySum[T core.Number](seq []T, index int) T {
	if index == len(seq) {
		return 0
	}

	return seq[index] + arraySum(seq, index+1)
}

// ArraySumIterative returns the sum of seq with a loop.
func ArraySumIterative[T core.Number](seq []T) T {
	var sum T
	for _, v := range seq {
		sum += v
	}

	return sum
}

// CountDigits returns the number of decimal digits in n. Domain n ≥ 0;
// CountDigits(0) == 1.
func CountDigits(n int64) (int, error) {
	if err := core.CheckNatural("linear: CountDigits", n); err != nil {
		return 0, err
	}

	return countDigits(n), nil
}

func countDigits(n int64) int {
	if n < 10 {
		return 1
	}

	return 1 + countDigits(n/10)
}

// SumDigits returns the sum of the decimal digits of n. Domain n ≥ 0.
func SumDigits(n int64) (int64, error) {
	if err := core.CheckNatural("linear: SumDigits", n); err != nil {
		return 0, err
	}

	return sumDigits(n), nil
}

func sumDigits(n int64) int64 {
	if n < 10 {
		return n
	}

	return n%10 + sumDigits(n/10)
}

// FindMax returns the largest element of seq.
func FindMax[T cmp.Ordered](seq []T) (T, error) {
	return FindMaxFrom(seq, 0)
}

// FindMaxFrom returns the largest element of seq[index:].
// index must lie in [0, len(seq)-1]; an empty seq is core.ErrEmptyInput.
func FindMaxFrom[T cmp.Ordered](seq []T, index int) (T, error) {
	const op = "linear: FindMaxFrom"
	var zero T
	if len(seq) == 0 {
		return zero, fmt.Errorf("%s: %w", op, core.ErrEmptyInput)
	}
	if err := core.CheckIndex(op, index, 0, len(seq)-1); err != nil {
		return zero, err
	}
	if err := core.CheckDepth(op, len(seq)-index); err != nil {
		return zero, err
	}

	return findMax(seq, index), nil
}

func findMax[T cmp.Ordered](seq []T, index int) T {
	if index == len(seq)-1 { // last element is its own maximum
		return seq[index]
	}

	return max(seq[index], findMax(seq, index+1))
}

// FindMaxIterative returns the largest element of seq with a loop.
func FindMaxIterative[T cmp.Ordered](seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, fmt.Errorf("linear: FindMaxIterative: %w", core.ErrEmptyInput)
	}

	best := seq[0]
	for _, v := range seq[1:] {
		best = max(best, v)
	}

	return best, nil
}

// Countdown returns n, n-1, …, 1. Countdown(0) is empty.
// Domain 0 ≤ n ≤ core.MaxDepth.
func Countdown(n int) ([]int, error) {
	const op = "linear: Countdown"
	if err := core.CheckNatural(op, n); err != nil {
		return nil, err
	}
	if err := core.CheckDepth(op, n); err != nil {
		return nil, err
	}

	return countdown(n, make([]int, 0, n)), nil
}

func countdown(n int, out []int) []int {
	if n <= 0 {
		return out
	}

	return countdown(n-1, append(out, n))
}

// DecimalToBinary renders n in base 2 without leading zeros.
// Domain n ≥ 0; DecimalToBinary(0) == "0".
func DecimalToBinary(n int64) (string, error) {
	if err := core.CheckNatural("linear: DecimalToBinary", n); err != nil {
		return "", err
	}

	return toBinary(n), nil
}

const bits = "01"

func toBinary(n int64) string {
	if n < 2 {
		return bits[n : n+1]
	}

	return toBinary(n/2) + bits[n%2:n%2+1]
}
