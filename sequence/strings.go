package sequence

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/recurse/core"
)

// IsPalindrome reports whether s reads the same both ways after lower-casing.
// The empty string and single runes are palindromes.
func IsPalindrome(s string) bool {
	r := []rune(s)
	if len(r)/2 > core.MaxDepth {
		return isPalindromeLoop(r)
	}

	return isPalindrome(r, 0, len(r)-1)
}

func isPalindrome(r []rune, lo, hi int) bool {
	if hi-lo < 1 { // zero or one rune left
		return true
	}
	if unicode.ToLower(r[lo]) != unicode.ToLower(r[hi]) {
		return false
	}

	return isPalindrome(r, lo+1, hi-1)
}

// IsPalindromeIterative is IsPalindrome as a two-pointer loop.
func IsPalindromeIterative(s string) bool {
	return isPalindromeLoop([]rune(s))
}

func isPalindromeLoop(r []rune) bool {
	for lo, hi := 0, len(r)-1; lo < hi; lo, hi = lo+1, hi-1 {
		if unicode.ToLower(r[lo]) != unicode.ToLower(r[hi]) {
			return false
		}
	}

	return true
}

// ReverseString returns s with its runes in reverse order.
func ReverseString(s string) string {
	r := []rune(s)
	if len(r) <= 1 {
		return s
	}
	if len(r) > core.MaxDepth {
		return reverseLoop(r)
	}

	var b strings.Builder
	b.Grow(len(s))
	reverse(r, len(r)-1, &b)

	return b.String()
}

func reverse(r []rune, hi int, b *strings.Builder) {
	if hi < 0 {
		return
	}
	b.WriteRune(r[hi]) // last rune first, then the reversed rest

	reverse(r, hi-1, b)
}

// ReverseStringIterative is ReverseString as an in-place swap loop.
func ReverseStringIterative(s string) string {
	r := []rune(s)
	if len(r) <= 1 {
		return s
	}

	return reverseLoop(r)
}

func reverseLoop(r []rune) string {
	for lo, hi := 0, len(r)-1; lo < hi; lo, hi = lo+1, hi-1 {
		r[lo], r[hi] = r[hi], r[lo]
	}

	return string(r)
}

// CountVowels returns the number of a, e, i, o, u runes in s, in either case.
func CountVowels(s string) int {
	n, _ := CountVowelsFrom(s, 0)

	return n
}

// CountVowelsFrom counts vowels from rune position index on.
// index must lie in [0, rune count].
func CountVowelsFrom(s string, index int) (int, error) {
	r := []rune(s)
	if err := core.CheckIndex("sequence: CountVowelsFrom", index, 0, len(r)); err != nil {
		return 0, err
	}
	if len(r)-index > core.MaxDepth {
		n := 0
		for _, c := range r[index:] {
			if isVowel(c) {
				n++
			}
		}

		return n, nil
	}

	return countVowels(r, index), nil
}

func countVowels(r []rune, index int) int {
	if index == len(r) {
		return 0
	}
	n := 0
	if isVowel(r[index]) {
		n = 1
	}

	return n + countVowels(r, index+1)
}

func isVowel(c rune) bool {
	switch unicode.ToLower(c) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}

// RemoveChar returns s without any occurrence of ch. Matching is exact
// (case-sensitive).
func RemoveChar(s string, ch rune) string {
	r := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	if len(r) > core.MaxDepth {
		for _, c := range r {
			if c != ch {
				b.WriteRune(c)
			}
		}

		return b.String()
	}
	removeChar(r, 0, ch, &b)

	return b.String()
}

func removeChar(r []rune, index int, ch rune, b *strings.Builder) {
	if index == len(r) {
		return
	}
	if r[index] != ch {
		b.WriteRune(r[index])
	}

	removeChar(r, index+1, ch, b)
}
