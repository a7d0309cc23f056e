// Package divide implements divide-and-conquer recursion: each call shrinks
// the problem geometrically, bounding recursion depth at O(log n).
//
// What:
//
//   - GCD:          Euclid's algorithm, GCD(a, b) = GCD(b, a mod b).
//   - BinarySearch: halving search over an ascending slice, with an
//     optional sortedness check (WithSortCheck).
//   - FastPower:    exponentiation by squaring.
//
// Each has an iterative sibling (GCDIterative, BinarySearchIterative) or a
// naive reference (NaivePower) to compare against.
//
// Complexity:
//
//   - GCD:          O(log min(|a|, |b|)) calls.
//   - BinarySearch: O(log n) calls, O(n) extra when WithSortCheck is set.
//   - FastPower:    O(log exp) multiplications, at most 2·bits.Len(exp);
//     NaivePower needs exp.
//
// Duplicates:
//
//	BinarySearch probes mid = left + (right−left)/2 and returns the first
//	probed index holding target. With duplicates this is neither the
//	leftmost nor the rightmost match, but it is the same index for the
//	same input every time. BinarySearchIterative probes identically.
//
// Unsorted input:
//
//	Without WithSortCheck the result on an unsorted slice is an arbitrary
//	index or core.NotFound. It never panics and never reads outside
//	[left, right].
//
// Errors:
//
//   - core.ErrInvalidInput  negative exponent, or bounds outside the slice.
//   - core.ErrPrecondition  WithSortCheck set and the range is not ascending.
//
// Overflow wraps silently; see package checked for a reporting mode.
package divide
