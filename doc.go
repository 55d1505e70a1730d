// Package aoc2025 is a collection of single-pass puzzle solvers built on a
// small shared harness.
//
// Layout:
//
//	puzzle/      harness: line reading, typed tokens, Solver, Answers, Registry
//	positions/   3-D junction-box positions parsed from "x,y,z" records
//	ranking/     every point pair ranked by squared distance, ties by id
//	forest/      ClusterForest: union-find with size tracking and on-demand membership
//	circuits/    day 8: wires boxes closest-first, snapshot and full-connectivity answers
//	config/      YAML + flag configuration with validation
//	cmd/aoc/     command-line entry point selecting a solver by day number
//
// Quick example:
//
//	res, err := circuits.SolveLines(lines, circuits.WithThreshold(1000))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.SnapshotProduct, res.ClosingProduct)
package aoc2025
