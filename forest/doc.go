// Package forest provides ClusterForest, an incremental connectivity
// structure over a fixed, closed universe of N point ids 0..N-1.
//
// What & Why
//
//   - Every point starts in its own singleton cluster.
//   - Union merges two clusters by size (the smaller root is attached under
//     the larger), Find resolves a point to its cluster root with path
//     compression. Both run in amortized near-constant time.
//   - Clusters are referenced by stable small integers (their root ids); no
//     cluster is ever materialized as a live set that could alias another.
//     Full membership (Members, Clusters) is rebuilt on demand from a reverse
//     index, which is only needed for snapshots and diagnostics.
//
// Invariants
//
//   - Clusters partition {0..N-1} at every moment.
//   - The sizes of all live clusters sum to N.
//   - Union on two points already in the same cluster is a no-op.
//
// Validate checks the bookkeeping invariants and reports drift as an error
// wrapping ErrInvariant. Passing an id outside 0..N-1 to any method is a
// programming error and panics with an error wrapping ErrUnknownPoint.
//
// A Forest has a single writer and is not safe for concurrent use.
package forest
