// Package recurse is a small, pure library of classic recursive
// algorithms, each shipped in its textbook recursive form next to an
// iterative or accumulator sibling, with explicit domains, base cases,
// complexity and safe-input ceilings.
//
// 🚀 What is in recurse?
//
//	• linear   — one self-call per step: Factorial, ArraySum, CountDigits,
//	             FindMax, Countdown, DecimalToBinary
//	• multiple — two or more self-calls: naive Fibonacci (with call
//	             statistics), Binomial, PascalRow, Hanoi
//	• tail     — accumulator recursion and its loop rewrite
//	• divide   — halving: GCD, BinarySearch, FastPower
//	• sequence — slices and strings: IsPalindrome, ReverseString,
//	             IsSorted, CountOccurrences, CountVowels, RemoveChar
//	• checked  — the overflow-reporting mode (ErrOverflow instead of wrap)
//	• core     — shared errors, ceilings and Stats
//
// ✨ Guarantees
//
//   - Pure: no shared state, no I/O, inputs are never mutated.
//   - Fail fast: bad input is rejected before the first recursive call.
//   - Bounded: recursive variants refuse depths above core.MaxDepth;
//     iterative siblings take any size.
//   - One overflow policy per package: wrap everywhere except checked.
//
// Quick example:
//
//	n, err := linear.Factorial(5)             // 120, nil
//	i, err := divide.BinarySearch(seq, 23)    // index or core.NotFound
//	_, err  = linear.FindMax([]int{})         // errors.Is(err, core.ErrEmptyInput)
//
// The cmd/recurse binary walks through every family:
//
//	go run ./cmd/recurse menu
package recurse
