package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/recurse/sequence"
)

// ExampleIsPalindrome shows the lower-casing policy.
func ExampleIsPalindrome() {
	fmt.Println(sequence.IsPalindrome("racecar"), sequence.IsPalindrome("Racecar"), sequence.IsPalindrome("hello"))
	// Output: true true false
}

func ExampleReverseString() {
	fmt.Println(sequence.ReverseString("recursion"))
	// Output: noisrucer
}

func ExampleRemoveChar() {
	fmt.Println(sequence.RemoveChar("mississippi", 's'))
	// Output: miiippi
}
