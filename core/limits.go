package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Ceilings. Recursive variants reject input above these before descending;
// the iterative siblings have no ceiling.
const (
	// MaxDepth is the deepest recursion any linear-depth variant accepts.
	// Goroutine stacks grow on demand, so this is far below the runtime
	// limit; it keeps one call from holding megabytes of frames.
	MaxDepth = 10_000

	// MaxFibonacciN bounds the naive O(2^n) Fibonacci.
	// Fibonacci(40) makes 331,160,281 calls.
	MaxFibonacciN = 40

	// MaxBinomialN bounds the Pascal-rule Binomial, which makes up to
	// 2·C(n, n/2) − 1 calls.
	MaxBinomialN = 25

	// MaxHanoiN bounds Hanoi, whose move list has 2^n − 1 entries.
	MaxHanoiN = 20
)

// NotFound is returned by the searches when the target is absent.
const NotFound = -1

// CheckNatural reports ErrInvalidInput when n < 0.
func CheckNatural[T constraints.Signed](op string, n T) error {
	if n < 0 {
		return fmt.Errorf("%s(%d): %w", op, n, ErrInvalidInput)
	}

	return nil
}

// CheckDepth reports ErrDepthExceeded when a recursion of the given depth
// would go past MaxDepth.
func CheckDepth(op string, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%s: depth %d > %d: %w", op, depth, MaxDepth, ErrDepthExceeded)
	}

	return nil
}

// CheckCeiling reports ErrLimitExceeded when n > ceiling.
func CheckCeiling(op string, n, ceiling int) error {
	if n > ceiling {
		return fmt.Errorf("%s(%d): ceiling %d: %w", op, n, ceiling, ErrLimitExceeded)
	}

	return nil
}

// CheckIndex reports ErrInvalidInput unless lo ≤ i ≤ hi.
func CheckIndex(op string, i, lo, hi int) error {
	if i < lo || i > hi {
		return fmt.Errorf("%s: index %d outside [%d, %d]: %w", op, i, lo, hi, ErrInvalidInput)
	}

	return nil
}
