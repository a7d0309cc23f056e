package multiple

import (
	"fmt"

	"github.com/katalvlaran/recurse/core"
)

// Peg names one of the three Hanoi rods.
type Peg byte

const (
	PegA Peg = 'A'
	PegB Peg = 'B'
	PegC Peg = 'C'
)

// String returns the single-letter peg name.
func (p Peg) String() string { return string(rune(p)) }

// Move transfers the top disk of From onto To. Disks are numbered from 1
// (smallest).
type Move struct {
	Disk     int
	From, To Peg
}

// String renders the move as "disk 1: A -> C".
func (m Move) String() string {
	return fmt.Sprintf("disk %d: %s -> %s", m.Disk, m.From, m.To)
}

// Hanoi returns the optimal move list for n disks from PegA to PegC using
// PegB as the spare. len(result) == 2^n − 1. Domain 0 ≤ n ≤ core.MaxHanoiN.
func Hanoi(n int) ([]Move, error) {
	const op = "multiple: Hanoi"
	if err := core.CheckNatural(op, n); err != nil {
		return nil, err
	}
	if err := core.CheckCeiling(op, n, core.MaxHanoiN); err != nil {
		return nil, err
	}

	moves := make([]Move, 0, (1<<n)-1)

	return hanoi(n, PegA, PegC, PegB, moves), nil
}

func hanoi(n int, from, to, spare Peg, moves []Move) []Move {
	if n == 0 {
		return moves
	}

	moves = hanoi(n-1, from, spare, to, moves)
	moves = append(moves, Move{Disk: n, From: from, To: to})

	return hanoi(n-1, spare, to, from, moves)
}
