package linear_test

import (
	"testing"

	"github.com/katalvlaran/recurse/linear"
)

// BenchmarkFactorial_Recursive20 measures 20 nested calls.
func BenchmarkFactorial_Recursive20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := linear.Factorial(20); err != nil {
			b.Fatalf("Factorial failed: %v", err)
		}
	}
}

// BenchmarkFactorial_Iterative20 measures the loop sibling.
func BenchmarkFactorial_Iterative20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := linear.FactorialIterative(20); err != nil {
			b.Fatalf("FactorialIterative failed: %v", err)
		}
	}
}

// BenchmarkArraySum_Recursive1000 sums 1000 elements by recursion.
func BenchmarkArraySum_Recursive1000(b *testing.B) {
	seq := make([]int, 1000)
	for i := range seq {
		seq[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linear.ArraySum(seq); err != nil {
			b.Fatalf("ArraySum failed: %v", err)
		}
	}
}

// BenchmarkArraySum_Iterative1000 sums 1000 elements with a loop.
func BenchmarkArraySum_Iterative1000(b *testing.B) {
	seq := make([]int, 1000)
	for i := range seq {
		seq[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linear.ArraySumIterative(seq)
	}
}
