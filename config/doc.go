// Package config loads the run configuration of the aoc command: which day to
// solve, where its input lives, and the knobs forwarded to the solver.
//
// Values come from Default, are optionally overlaid by a YAML file (Load), may
// be further overridden by command-line flags, and are finally checked with
// Validate. Validation failures wrap ErrInvalid and read as one message per field.
package config
