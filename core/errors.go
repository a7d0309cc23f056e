package core

import "errors"

// Every message is prefixed with "recurse: " so it can be grepped in
// caller logs. Algorithms wrap these with the operation and its arguments,
// e.g. fmt.Errorf("linear: Factorial(%d): %w", n, ErrInvalidInput).
var (
	// ErrInvalidInput indicates an argument outside the documented domain,
	// e.g. a negative n for Factorial or a negative exponent for FastPower.
	ErrInvalidInput = errors.New("recurse: invalid input")

	// ErrEmptyInput indicates an operation that needs at least one element
	// was given an empty sequence.
	ErrEmptyInput = errors.New("recurse: empty input")

	// ErrPrecondition indicates a detected precondition violation, such as an
	// unsorted slice passed to BinarySearch with WithSortCheck.
	ErrPrecondition = errors.New("recurse: precondition violated")

	// ErrOverflow indicates a result that does not fit in int64.
	// Returned only by package checked.
	ErrOverflow = errors.New("recurse: integer overflow")

	// ErrDepthExceeded indicates the recursion would go deeper than MaxDepth.
	ErrDepthExceeded = errors.New("recurse: recursion depth exceeded")

	// ErrLimitExceeded indicates an input above the work ceiling of an
	// exponential-time variant (MaxFibonacciN, MaxBinomialN, MaxHanoiN).
	ErrLimitExceeded = errors.New("recurse: input above safe ceiling")
)
