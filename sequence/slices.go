package sequence

import (
	"cmp"

	"github.com/katalvlaran/recurse/core"
)

// IsSorted reports whether seq is in ascending (non-decreasing) order.
func IsSorted[T cmp.Ordered](seq []T) bool {
	ok, _ := IsSortedFrom(seq, 0)

	return ok
}

// IsSortedFrom reports whether seq[index:] is ascending.
// index must lie in [0, len(seq)].
func IsSortedFrom[T cmp.Ordered](seq []T, index int) (bool, error) {
	if err := core.CheckIndex("sequence: IsSortedFrom", index, 0, len(seq)); err != nil {
		return false, err
	}
	if len(seq)-index > core.MaxDepth {
		for i := index; i+1 < len(seq); i++ {
			if cmp.Less(seq[i+1], seq[i]) {
				return false, nil
			}
		}

		return true, nil
	}

	return isSorted(seq, index), nil
}

func isSorted[T cmp.Ordered](seq []T, index int) bool {
	if index >= len(seq)-1 {
		return true
	}
	if cmp.Less(seq[index+1], seq[index]) {
		return false
	}

	return isSorted(seq, index+1)
}

// CountOccurrences returns how many elements of seq equal target.
func CountOccurrences[T comparable](seq []T, target T) int {
	n, _ := CountOccurrencesFrom(seq, 0, target)

	return n
}

// CountOccurrencesFrom counts matches in seq[index:].
// index must lie in [0, len(seq)].
func CountOccurrencesFrom[T comparable](seq []T, index int, target T) (int, error) {
	if err := core.CheckIndex("sequence: CountOccurrencesFrom", index, 0, len(seq)); err != nil {
		return 0, err
	}
	if len(seq)-index > core.MaxDepth {
		n := 0
		for _, v := range seq[index:] {
			if v == target {
				n++
			}
		}

		return n, nil
	}

	return countOccurrences(seq, index, target), nil
}

func countOccurrences[T comparable](seq []T, index int, target T) int {
	if index == len(seq) {
		return 0
	}
	n := 0
	if seq[index] == target {
		n = 1
	}

	return n + countOccurrences(seq, index+1, target)
}
