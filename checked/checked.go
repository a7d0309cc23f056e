package checked

import (
	"fmt"
	"math"

	"github.com/katalvlaran/recurse/core"
)

// AddExact returns a + b, or core.ErrOverflow if the sum leaves int64.
func AddExact(a, b int64) (int64, error) {
	s := a + b
	// overflow iff both operands share a sign the sum does not
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, fmt.Errorf("checked: AddExact(%d, %d): %w", a, b, core.ErrOverflow)
	}

	return s, nil
}

// MulExact returns a * b, or core.ErrOverflow if the product leaves int64.
func MulExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || p/b != a {
		return 0, fmt.Errorf("checked: MulExact(%d, %d): %w", a, b, core.ErrOverflow)
	}

	return p, nil
}

// Factorial returns n! recursively, failing with core.ErrOverflow for n > 20.
func Factorial(n int) (int64, error) {
	const op = "checked: Factorial"
	if err := core.CheckNatural(op, n); err != nil {
		return 0, err
	}
	if err := core.CheckDepth(op, n); err != nil {
		return 0, err
	}

	return factorial(int64(n))
}

func factorial(n int64) (int64, error) {
	if n <= 1 {
		return 1, nil
	}
	rest, err := factorial(n - 1)
	if err != nil {
		return 0, err
	}

	return MulExact(n, rest)
}

// Power returns base^exp by squaring, failing with core.ErrOverflow when
// any intermediate square or product leaves int64.
func Power(base int64, exp int) (int64, error) {
	if err := core.CheckNatural("checked: Power", exp); err != nil {
		return 0, err
	}

	return power(base, exp)
}

func power(base int64, exp int) (int64, error) {
	if exp == 0 {
		return 1, nil
	}
	half, err := power(base, exp/2)
	if err != nil {
		return 0, err
	}
	sq, err := MulExact(half, half)
	if err != nil {
		return 0, err
	}
	if exp%2 == 0 {
		return sq, nil
	}

	return MulExact(base, sq)
}

// Fibonacci returns F(n) by the accumulator recursion of package tail,
// failing with core.ErrOverflow for n > 92.
func Fibonacci(n int) (int64, error) {
	const op = "checked: Fibonacci"
	if err := core.CheckNatural(op, n); err != nil {
		return 0, err
	}
	if err := core.CheckDepth(op, n); err != nil {
		return 0, err
	}

	return fibonacci(n, 0, 1)
}

func fibonacci(n int, a, b int64) (int64, error) {
	if n == 0 {
		return a, nil
	}
	next, err := AddExact(a, b)
	if err != nil {
		// F(n) itself may still fit; only the lookahead overflowed
		if n == 1 {
			return b, nil
		}

		return 0, err
	}

	return fibonacci(n-1, b, next)
}
