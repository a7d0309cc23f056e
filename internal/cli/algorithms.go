package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurse/core"
	"github.com/katalvlaran/recurse/divide"
	"github.com/katalvlaran/recurse/internal/logger"
	"github.com/katalvlaran/recurse/linear"
	"github.com/katalvlaran/recurse/multiple"
	"github.com/katalvlaran/recurse/sequence"
	"github.com/katalvlaran/recurse/tail"
)

var factorialCmd = &cobra.Command{
	Use:   "factorial N",
	Short: "Compute N! recursively, tail-recursively and iteratively",
	Args:  cobra.ExactArgs(1),
	RunE:  runFactorial,
}

var fibCmd = &cobra.Command{
	Use:   "fib N",
	Short: "Compute the Nth Fibonacci number and compare call counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runFib,
}

var gcdCmd = &cobra.Command{
	Use:   "gcd A B",
	Short: "Greatest common divisor by Euclid's algorithm",
	Args:  cobra.ExactArgs(2),
	RunE:  runGCD,
}

var powerCmd = &cobra.Command{
	Use:   "power BASE EXP",
	Short: "BASE^EXP by squaring, with the multiplication count",
	Args:  cobra.ExactArgs(2),
	RunE:  runPower,
}

var searchCheck bool

var searchCmd = &cobra.Command{
	Use:   "search TARGET N...",
	Short: "Binary search for TARGET in the ascending list N...",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var palindromeCmd = &cobra.Command{
	Use:   "palindrome TEXT",
	Short: "Report whether TEXT is a palindrome (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalindrome,
}

var reverseCmd = &cobra.Command{
	Use:   "reverse TEXT",
	Short: "Reverse TEXT rune by rune",
	Args:  cobra.ExactArgs(1),
	RunE:  runReverse,
}

var binaryCmd = &cobra.Command{
	Use:   "binary N",
	Short: "Render N in base 2 by repeated halving",
	Args:  cobra.ExactArgs(1),
	RunE:  runBinary,
}

var hanoiCmd = &cobra.Command{
	Use:   "hanoi N",
	Short: "List the moves that solve an N-disk Tower of Hanoi",
	Args:  cobra.ExactArgs(1),
	RunE:  runHanoi,
}

func init() {
	searchCmd.Flags().BoolVar(&searchCheck, "check", false, "verify the list is ascending first")

	rootCmd.AddCommand(factorialCmd, fibCmd, gcdCmd, powerCmd, searchCmd,
		palindromeCmd, reverseCmd, binaryCmd, hanoiCmd)
}

// printResult writes "label = value" with the configured styles.
func printResult(cmd *cobra.Command, label string, value any) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", styles.Label(label), styles.Result(fmt.Sprint(value)))
}

func runFactorial(cmd *cobra.Command, args []string) error {
	n, err := parseInt("n", args[0])
	if err != nil {
		return err
	}

	logger.Debug("linear.Factorial(%d)", n)
	rec, err := linear.Factorial(n)
	if err != nil {
		return err
	}
	logger.Debug("tail.Factorial(%d)", n)
	acc, err := tail.Factorial(n)
	if err != nil {
		return err
	}
	iter, err := linear.FactorialIterative(n)
	if err != nil {
		return err
	}

	printResult(cmd, fmt.Sprintf("factorial(%d)", n), rec)
	printResult(cmd, fmt.Sprintf("factorialTail(%d, 1)", n), acc)
	printResult(cmd, fmt.Sprintf("factorialIterative(%d)", n), iter)
	if n > 20 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Error("note: int64 wraps past 20!, see package checked"))
	}

	return nil
}

func runFib(cmd *cobra.Command, args []string) error {
	n, err := parseInt("n", args[0])
	if err != nil {
		return err
	}

	iv, ist, err := multiple.FibonacciIterativeStats(n)
	if err != nil {
		return err
	}
	printResult(cmd, fmt.Sprintf("fibonacciIterative(%d)", n), fmt.Sprintf("%d (steps %d)", iv, ist.Steps))

	if n > core.MaxFibonacciN {
		logger.Warn("naive Fibonacci skipped: n=%d above %d", n, core.MaxFibonacciN)
		return nil
	}
	logger.Debug("multiple.FibonacciStats(%d)", n)
	v, st, err := multiple.FibonacciStats(n)
	if err != nil {
		return err
	}
	printResult(cmd, fmt.Sprintf("fibonacci(%d)", n), fmt.Sprintf("%d (calls %d, depth %d)", v, st.Calls, st.MaxDepth))

	return nil
}

func runGCD(cmd *cobra.Command, args []string) error {
	a, err := parseInt("a", args[0])
	if err != nil {
		return err
	}
	b, err := parseInt("b", args[1])
	if err != nil {
		return err
	}

	printResult(cmd, fmt.Sprintf("gcd(%d, %d)", a, b), divide.GCD(int64(a), int64(b)))

	return nil
}

func runPower(cmd *cobra.Command, args []string) error {
	base, err := parseInt("base", args[0])
	if err != nil {
		return err
	}
	exp, err := parseInt("exp", args[1])
	if err != nil {
		return err
	}

	v, st, err := divide.FastPowerStats(int64(base), exp)
	if err != nil {
		return err
	}
	_, nst, err := divide.NaivePowerStats(int64(base), exp)
	if err != nil {
		return err
	}
	printResult(cmd, fmt.Sprintf("fastPower(%d, %d)", base, exp),
		fmt.Sprintf("%d (%d multiplications, naive %d)", v, st.Multiplications, nst.Multiplications))

	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	target, err := parseInt("target", args[0])
	if err != nil {
		return err
	}
	seq := make([]int, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := parseInt("element", a)
		if err != nil {
			return err
		}
		seq = append(seq, v)
	}

	var opts []divide.Option
	if searchCheck {
		opts = append(opts, divide.WithSortCheck())
	}
	idx, err := divide.BinarySearch(seq, target, opts...)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("binarySearch(%v, %d)", seq, target)
	if idx == core.NotFound {
		printResult(cmd, label, "not found")
		return nil
	}
	printResult(cmd, label, idx)

	return nil
}

func runPalindrome(cmd *cobra.Command, args []string) error {
	printResult(cmd, fmt.Sprintf("isPalindrome(%q)", args[0]), sequence.IsPalindrome(args[0]))
	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	printResult(cmd, fmt.Sprintf("reverseString(%q)", args[0]), fmt.Sprintf("%q", sequence.ReverseString(args[0])))
	return nil
}

func runBinary(cmd *cobra.Command, args []string) error {
	n, err := parseInt("n", args[0])
	if err != nil {
		return err
	}

	s, err := linear.DecimalToBinary(int64(n))
	if err != nil {
		return err
	}
	printResult(cmd, fmt.Sprintf("decimalToBinary(%d)", n), s)

	return nil
}

func runHanoi(cmd *cobra.Command, args []string) error {
	n, err := parseInt("n", args[0])
	if err != nil {
		return err
	}

	moves, err := multiple.Hanoi(n)
	if err != nil {
		return err
	}
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = "  " + m.String()
	}
	printResult(cmd, fmt.Sprintf("hanoi(%d)", n), fmt.Sprintf("%d moves", len(moves)))
	if len(lines) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	}

	return nil
}
