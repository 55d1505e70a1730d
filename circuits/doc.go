// Package circuits solves the junction-box circuit puzzle: points in 3-D space
// are wired together pair by pair, closest pair first, and each wire merges
// the two circuits it touches.
//
// The pipeline is strictly one-way:
//
//	positions.Store ─► ranking.Rank ─► forest.Forest ─► Result
//
// Solve owns no clustering logic of its own. It consumes the ranked edges one
// at a time and applies two independent stopping rules:
//
//   - Snapshot: once Threshold edges have been processed (merged or
//     redundant), the three largest circuit sizes are read exactly once and
//     multiplied (missing slots count as 1). This is Part 1.
//   - Full connectivity: the edge whose merge leaves a single circuit holding
//     every point ends the run. The product of its endpoints' x-coordinates
//     is Part 2. If this happens before Threshold edges, the snapshot is taken
//     from the state after that edge.
//
// Fewer than two points cannot be connected by any edge; Solve reports
// ErrTooFewPoints instead of a meaningless product.
package circuits
