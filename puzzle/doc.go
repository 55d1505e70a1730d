// Package puzzle is the small harness shared by every daily solver.
//
// It covers the three chores each solver repeats:
//
//   - reading an input file into lines (ReadLines, InputPath);
//   - splitting a line into typed tokens (Tokens, Ints);
//   - reporting two textual answers (Answers) through the Solver interface.
//
// A Registry maps day numbers to solvers so that a single entry point can
// select and run a solver by its numeric identifier:
//
//	reg := puzzle.NewRegistry()
//	_ = reg.Register(8, circuits.NewSolver())
//	ans, err := puzzle.Run(reg, 8, "./inputs")
package puzzle
