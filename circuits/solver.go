package circuits

import (
	"strconv"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Day is the puzzle day this package solves.
const Day = 8

// Solver adapts Solve to puzzle.Solver, rendering both answers as decimal text.
type Solver struct {
	opts []Option
}

// NewSolver returns a Solver that passes opts to every Solve call.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: opts}
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(lines []string) (puzzle.Answers, error) {
	res, err := SolveLines(lines, s.opts...)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{
		Part1: strconv.FormatUint(res.SnapshotProduct, 10),
		Part2: strconv.FormatInt(res.ClosingProduct, 10),
	}, nil
}

var _ puzzle.Solver = (*Solver)(nil)
