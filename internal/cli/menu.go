package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurse/checked"
	"github.com/katalvlaran/recurse/core"
	"github.com/katalvlaran/recurse/divide"
	"github.com/katalvlaran/recurse/internal/config"
	"github.com/katalvlaran/recurse/internal/logger"
	"github.com/katalvlaran/recurse/linear"
	"github.com/katalvlaran/recurse/multiple"
	"github.com/katalvlaran/recurse/sequence"
	"github.com/katalvlaran/recurse/tail"
)

// demo is one line of the menu walkthrough. run returns the printed value;
// an error is printed as the expected outcome, not treated as a failure.
type demo struct {
	label string
	run   func() (any, error)
}

var menuCmd = &cobra.Command{
	Use:   "menu [family...]",
	Short: "Run the demonstrations of every enabled family in order",
	Long: `Run the demonstrations of each algorithm family. With no arguments the
families listed in the config file run, in the order linear, multiple, tail,
divide, sequence, checked.`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	families := cfg.Families
	if len(args) > 0 {
		for _, a := range args {
			if !slices.Contains(config.Families, a) {
				return fmt.Errorf("menu: unknown family %q (want one of %v)", a, config.Families)
			}
		}
		families = args
	}

	out := cmd.OutOrStdout()
	for _, f := range config.Families {
		if !slices.Contains(families, f) {
			continue
		}
		logger.Section(f)
		runDemos(out, f, demos(f))
	}

	return nil
}

func runDemos(out io.Writer, family string, list []demo) {
	fmt.Fprintln(out, styles.Title("== "+family+" =="))
	for _, d := range list {
		logger.Debug("%s: %s", family, d.label)
		v, err := d.run()
		if err != nil {
			fmt.Fprintf(out, "  %s -> %s\n", styles.Label(d.label), styles.Error(err.Error()))
			continue
		}
		fmt.Fprintf(out, "  %s = %s\n", styles.Label(d.label), styles.Result(fmt.Sprint(v)))
	}
}

// demos returns the walkthrough for one family.
func demos(family string) []demo {
	sorted := []int{2, 5, 8, 12, 16, 23, 38, 45, 56, 67, 78}

	switch family {
	case "linear":
		return []demo{
			{"factorial(5)", func() (any, error) { return linear.Factorial(5) }},
			{"factorial(-1)", func() (any, error) { return linear.Factorial(-1) }},
			{"arraySum([1 2 3 4 5], 0)", func() (any, error) { return linear.ArraySum([]int{1, 2, 3, 4, 5}) }},
			{"countDigits(12345)", func() (any, error) { return linear.CountDigits(12345) }},
			{"findMax([3 9 2 7])", func() (any, error) { return linear.FindMax([]int{3, 9, 2, 7}) }},
			{"findMax([])", func() (any, error) { return linear.FindMax([]int{}) }},
			{"countdown(5)", func() (any, error) { return linear.Countdown(5) }},
			{"decimalToBinary(10)", func() (any, error) { return linear.DecimalToBinary(10) }},
		}
	case "multiple":
		return []demo{
			{"fibonacci(10)", func() (any, error) { return multiple.Fibonacci(10) }},
			{"fibonacci(20) cost", func() (any, error) {
				_, naive, err := multiple.FibonacciStats(20)
				if err != nil {
					return nil, err
				}
				_, iter, err := multiple.FibonacciIterativeStats(20)
				if err != nil {
					return nil, err
				}

				return fmt.Sprintf("%d naive calls vs %d iterative steps", naive.Calls, iter.Steps), nil
			}},
			{"binomial(5, 2)", func() (any, error) { return multiple.Binomial(5, 2) }},
			{"pascalRow(4)", func() (any, error) { return multiple.PascalRow(4) }},
			{"hanoi(3) moves", func() (any, error) {
				m, err := multiple.Hanoi(3)
				return len(m), err
			}},
		}
	case "tail":
		return []demo{
			{"factorialTail(5, 1)", func() (any, error) { return tail.Factorial(5) }},
			{"factorialLoop(5)", func() (any, error) { return tail.FactorialLoop(5) }},
			{"sumTail(100, 0)", func() (any, error) { return tail.Sum(100) }},
			{"fibonacciTail(50, 0, 1)", func() (any, error) { return tail.Fibonacci(50) }},
		}
	case "divide":
		return []demo{
			{"gcd(48, 18)", func() (any, error) { return divide.GCD(48, 18), nil }},
			{fmt.Sprintf("binarySearch(%v, 23)", sorted), func() (any, error) { return divide.BinarySearch(sorted, 23) }},
			{"binarySearch(..., 24)", func() (any, error) { return divide.BinarySearch(sorted, 24) }},
			{"binarySearch([3 1 2], 1) checked", func() (any, error) {
				return divide.BinarySearch([]int{3, 1, 2}, 1, divide.WithSortCheck())
			}},
			{"fastPower(2, 10)", func() (any, error) { return divide.FastPower(2, 10) }},
		}
	case "sequence":
		return []demo{
			{`isPalindrome("racecar")`, func() (any, error) { return sequence.IsPalindrome("racecar"), nil }},
			{`isPalindrome("hello")`, func() (any, error) { return sequence.IsPalindrome("hello"), nil }},
			{`reverseString("recursion")`, func() (any, error) { return sequence.ReverseString("recursion"), nil }},
			{"isSorted([1 2 2 3])", func() (any, error) { return sequence.IsSorted([]int{1, 2, 2, 3}), nil }},
			{"countOccurrences([1 2 3 2 2], 2)", func() (any, error) {
				return sequence.CountOccurrences([]int{1, 2, 3, 2, 2}, 2), nil
			}},
			{`countVowels("education")`, func() (any, error) { return sequence.CountVowels("education"), nil }},
			{`removeChar("banana", 'a')`, func() (any, error) { return sequence.RemoveChar("banana", 'a'), nil }},
		}
	case "checked":
		return []demo{
			{"addExact(MaxInt64, 1)", func() (any, error) { return checked.AddExact(1<<63-1, 1) }},
			{"factorial(20)", func() (any, error) { return checked.Factorial(20) }},
			{"factorial(21)", func() (any, error) { return checked.Factorial(21) }},
			{"fibonacci(93)", func() (any, error) {
				v, err := checked.Fibonacci(93)
				if errors.Is(err, core.ErrOverflow) {
					return nil, fmt.Errorf("F(93) does not fit in int64: %w", err)
				}
				return v, err
			}},
		}
	}

	return nil
}
