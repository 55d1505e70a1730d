package puzzle

import (
	"fmt"
	"sort"
)

// Registry maps day numbers to solvers. The zero value is not usable; call NewRegistry.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register binds s to day.
// Returns ErrUnknownDay if day is outside [MinDay, MaxDay],
// ErrDuplicateDay if the day already has a solver.
func (r *Registry) Register(day int, s Solver) error {
	if day < MinDay || day > MaxDay {
		return fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.solvers[day] = s

	return nil
}

// Lookup returns the solver registered for day, or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}

// Run selects the solver for day, reads InputPath(dir, day) and solves it.
func Run(r *Registry, day int, dir string) (Answers, error) {
	s, err := r.Lookup(day)
	if err != nil {
		return Answers{}, err
	}
	lines, err := ReadLines(InputPath(dir, day))
	if err != nil {
		return Answers{}, err
	}

	return s.Solve(lines)
}
