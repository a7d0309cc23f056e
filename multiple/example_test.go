package multiple_test

import (
	"fmt"

	"github.com/katalvlaran/recurse/multiple"
)

// ExampleFibonacci compares naive and iterative cost for the same value.
func ExampleFibonacci() {
	v, naive, _ := multiple.FibonacciStats(10)
	_, iter, _ := multiple.FibonacciIterativeStats(10)
	fmt.Printf("F(10)=%d naive calls=%d iterative steps=%d\n", v, naive.Calls, iter.Steps)
	// Output: F(10)=55 naive calls=177 iterative steps=9
}

func ExampleHanoi() {
	moves, _ := multiple.Hanoi(2)
	for _, m := range moves {
		fmt.Println(m)
	}
	// Output:
	// disk 1: A -> B
	// disk 2: A -> C
	// disk 1: B -> C
}
