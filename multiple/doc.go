// Package multiple implements binary and multiple recursion: each call
// issues two or more recursive calls and combines their results.
//
// What:
//
//   - Fibonacci:          naive F(n) = F(n−1) + F(n−2), base n ≤ 1 → n.
//   - FibonacciIterative: the O(n) time, O(1) space sibling.
//   - FibonacciStats, FibonacciIterativeStats: the same values plus a
//     core.Stats, so the cost gap is a value a test can assert on.
//   - Binomial:           C(n,k) by Pascal's rule C(n−1,k−1) + C(n−1,k).
//   - PascalRow:          row n of Pascal's triangle, built from row n−1.
//   - Hanoi:              Tower of Hanoi move list, two sub-towers per call.
//
// Complexity:
//
//   - Fibonacci:  Time O(φ^n) ≈ O(2^n), exactly 2·F(n+1) − 1 calls;
//     Memory O(n) stack.
//   - FibonacciIterative: Time O(n), Memory O(1).
//   - Binomial:   Time O(C(n,k)), Memory O(n) stack.
//   - PascalRow:  Time O(n²), Memory O(n) stack plus O(n) per row.
//   - Hanoi:      Time O(2^n), Memory O(n) stack plus the 2^n − 1 moves.
//
// Ceilings:
//
//	The exponential variants reject input above core.MaxFibonacciN,
//	core.MaxBinomialN and core.MaxHanoiN with core.ErrLimitExceeded.
//	FibonacciIterative has no ceiling and wraps past n = 92.
//
// Errors:
//
//   - core.ErrInvalidInput   negative n, or k outside [0, n].
//   - core.ErrLimitExceeded  n above the variant's ceiling.
//   - core.ErrDepthExceeded  PascalRow above core.MaxDepth.
package multiple
