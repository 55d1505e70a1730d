package puzzle

import "errors"

// Sentinel errors for harness operations.
var (
	// ErrInput indicates the input file could not be opened or read.
	ErrInput = errors.New("puzzle: cannot read input")
	// ErrToken indicates a token does not decode to the requested type.
	ErrToken = errors.New("puzzle: malformed token")
	// ErrUnknownDay indicates a day outside 1..25 or one with no solver.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrDuplicateDay indicates a second solver registered for the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
)

// MinDay and MaxDay bound the numeric identifiers a Registry accepts.
const (
	MinDay = 1
	MaxDay = 25
)

// Answers holds the two textual results of a puzzle.
type Answers struct {
	Part1 string
	Part2 string
}

// Solver turns the lines of an input file into two answers.
// Implementations are single-pass and must not retain lines.
type Solver interface {
	Solve(lines []string) (Answers, error)
}

// SolverFunc adapts an ordinary function to the Solver interface.
type SolverFunc func(lines []string) (Answers, error)

// Solve calls f(lines).
func (f SolverFunc) Solve(lines []string) (Answers, error) {
	return f(lines)
}
