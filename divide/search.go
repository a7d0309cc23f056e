package divide

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/recurse/core"
)

// BinarySearch returns an index i with seq[i] == target, or core.NotFound.
// seq must be sorted ascending.
func BinarySearch[T cmp.Ordered](seq []T, target T, opts ...Option) (int, error) {
	return BinarySearchRange(seq, target, 0, len(seq)-1, opts...)
}

// BinarySearchRange searches the inclusive range seq[left..right].
// left must lie in [0, len(seq)] and right in [-1, len(seq)-1]; left > right
// is an empty range.
func BinarySearchRange[T cmp.Ordered](seq []T, target T, left, right int, opts ...Option) (int, error) {
	const op = "divide: BinarySearchRange"

	// 1. Apply options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	// 2. Validate bounds
	if err := core.CheckIndex(op, left, 0, len(seq)); err != nil {
		return core.NotFound, err
	}
	if err := core.CheckIndex(op, right, -1, len(seq)-1); err != nil {
		return core.NotFound, err
	}

	// 3. Optional precondition check
	if sopts.SortCheck && left <= right && !ascending(seq[left:right+1]) {
		return core.NotFound, fmt.Errorf("%s: range [%d, %d] not ascending: %w", op, left, right, core.ErrPrecondition)
	}

	return binarySearch(seq, target, left, right), nil
}

func binarySearch[T cmp.Ordered](seq []T, target T, left, right int) int {
	if left > right { // empty range
		return core.NotFound
	}

	mid := left + (right-left)/2
	switch cmp.Compare(seq[mid], target) {
	case 0:
		return mid
	case 1:
		return binarySearch(seq, target, left, mid-1)
	default:
		return binarySearch(seq, target, mid+1, right)
	}
}

// BinarySearchIterative is BinarySearch as a loop. It probes the same
// midpoints, so it returns the same index for duplicates.
func BinarySearchIterative[T cmp.Ordered](seq []T, target T) int {
	left, right := 0, len(seq)-1
	for left <= right {
		mid := left + (right-left)/2
		switch cmp.Compare(seq[mid], target) {
		case 0:
			return mid
		case 1:
			right = mid - 1
		default:
			left = mid + 1
		}
	}

	return core.NotFound
}

func ascending[T cmp.Ordered](seq []T) bool {
	for i := 1; i < len(seq); i++ {
		if cmp.Less(seq[i], seq[i-1]) {
			return false
		}
	}

	return true
}
