// Package sequence implements recursion over slices and strings. Recursion
// shrinks the view through index bounds; inputs are never copied or
// mutated, except that strings are decoded to runes once per call.
//
// What:
//
//   - IsPalindrome:     compare ends, recurse on the interior.
//   - ReverseString:    last rune followed by the reverse of the rest.
//   - IsSorted:         seq[i] ≤ seq[i+1] for every i, base index ≥ len−1.
//   - CountOccurrences: elements equal to target.
//   - CountVowels:      a, e, i, o, u in either case.
//   - RemoveChar:       the string without every occurrence of a rune.
//
// Text policy:
//
//	Strings are handled as Unicode code points. IsPalindrome lower-cases
//	with unicode.ToLower before comparing; whitespace and punctuation are
//	significant, so "Racecar" is a palindrome and "race car" is not.
//	Invalid UTF-8 decodes to U+FFFD, so ReverseString round-trips exactly
//	only for valid UTF-8 input.
//
// Depth:
//
//	These functions take any input and never fail on length. When the
//	recursion depth would pass core.MaxDepth they run the equivalent loop
//	instead; the exported *Iterative siblings are those loops. The *From
//	variants validate their index and return core.ErrInvalidInput.
//
// Complexity:
//
//	Time O(n), Memory O(n) for the rune view plus O(min(n, MaxDepth)) stack.
package sequence
