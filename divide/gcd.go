package divide

// GCD returns the greatest common divisor of a and b by Euclid's algorithm.
// GCD(a, 0) == a.
//
// For negative arguments the magnitude of the result is the gcd; its sign
// is whatever the reduction leaves under Go's truncated remainder.
// Callers needing a non-negative result should pass absolute values.
func GCD(a, b int64) int64 {
	if b == 0 {
		return a
	}

	return GCD(b, a%b)
}

// GCDIterative is GCD as a loop.
func GCDIterative(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
