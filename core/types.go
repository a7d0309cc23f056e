package core

import "golang.org/x/exp/constraints"

// Number is the element constraint for arithmetic over sequences.
type Number interface {
	constraints.Integer | constraints.Float
}

// Stats records the cost of a single evaluation.
//
//   - Calls           — function invocations, the entry call included.
//   - MaxDepth        — deepest simultaneous frame count (entry = 1).
//   - Multiplications — multiplications performed, for the power functions.
//   - Steps           — loop iterations, for iterative siblings.
type Stats struct {
	Calls           int
	MaxDepth        int
	Multiplications int
	Steps           int
}

// Enter records one call at the given depth.
func (s *Stats) Enter(depth int) {
	s.Calls++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}
