package circuits

import (
	"fmt"
	"math"
	"math/bits"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/forest"
	"github.com/katalvlaran/aoc2025/positions"
	"github.com/katalvlaran/aoc2025/ranking"
)

// snapshotSlots is how many of the largest circuits Part 1 multiplies.
const snapshotSlots = 3

// Solve wires the store's points together in ranked order and returns both answers.
//
// Error Conditions:
//   - ErrInvalidThreshold : Threshold < 1.
//   - ErrTooFewPoints     : store holds fewer than two points.
//   - positions.ErrCoordRange : a coordinate lies outside ±positions.MaxCoord.
//   - ErrProductOverflow  : the closing x-coordinate product does not fit in int64.
//   - forest.ErrInvariant : the forest bookkeeping drifted (a defect, never expected).
//
// Steps:
//  1. Validate options, the point count and the coordinate range.
//  2. Rank every pair (fully materialized before merging starts).
//  3. Feed edges to an extractor until it reports full connectivity.
//  4. Validate the forest and return the collected Result.
//
// Complexity: O(N² log N) for ranking, near-linear in processed edges for merging.
func Solve(store *positions.Store, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate.
	if o.Threshold < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidThreshold, o.Threshold)
	}
	n := store.Len()
	if n < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	// Squared distances are exact only within the coordinate bound.
	if err := store.Validate(); err != nil {
		return Result{}, err
	}

	// 2. Rank.
	edges := ranking.Rank(store.Points(), ranking.WithWorkers(o.Workers))
	o.Logger.Debug("ranked edges",
		zap.Int("points", n),
		zap.Int("edges", len(edges)),
		zap.Int("threshold", o.Threshold),
	)

	// 3. Merge until connected.
	x := newExtractor(store, forest.New(n), o)
	for _, e := range edges {
		if x.step(e) {
			break
		}
	}
	if x.err != nil {
		return Result{}, x.err
	}
	if !x.connected {
		return Result{}, fmt.Errorf("%w: %d edges exhausted with %d circuits left",
			forest.ErrInvariant, len(edges), x.forest.Count())
	}

	// 4. Validate bookkeeping.
	if err := x.forest.Validate(); err != nil {
		return Result{}, err
	}

	return x.res, nil
}

// SolveLines parses records with positions.Parse and calls Solve.
func SolveLines(records []string, opts ...Option) (Result, error) {
	store, err := positions.Parse(records)
	if err != nil {
		return Result{}, err
	}

	return Solve(store, opts...)
}

// extractor is the merge-phase state machine. Its two terminal conditions are
// the one-shot snapshot (snapped) and full connectivity (connected).
type extractor struct {
	store     *positions.Store
	forest    *forest.Forest
	threshold int
	log       *zap.Logger

	snapped   bool
	connected bool
	res       Result
	err       error
}

func newExtractor(store *positions.Store, f *forest.Forest, o Options) *extractor {
	return &extractor{
		store:     store,
		forest:    f,
		threshold: o.Threshold,
		log:       o.Logger,
	}
}

// step consumes one ranked edge and reports whether processing must stop.
func (x *extractor) step(e ranking.Edge) bool {
	x.res.Processed++

	m := x.forest.Union(e.A, e.B)
	if m.Merged {
		x.res.Merges++
	}

	if m.Merged && x.forest.IsFullyConnected() {
		x.connected = true
		x.res.ClosingEdge = e
		prod, ok := mulInt64(x.store.X(e.A), x.store.X(e.B))
		if !ok {
			x.err = fmt.Errorf("%w: %d * %d", ErrProductOverflow, x.store.X(e.A), x.store.X(e.B))
			return true
		}
		x.res.ClosingProduct = prod
		// Connectivity before the threshold: snapshot the final state.
		if !x.snapped {
			x.snapshot()
		}
		x.log.Debug("fully connected",
			zap.Stringer("edge", e),
			zap.Int("processed", x.res.Processed),
			zap.Int64("product", x.res.ClosingProduct),
		)

		return true
	}

	if !x.snapped && x.res.Processed == x.threshold {
		x.snapshot()
	}

	return false
}

// snapshot reads the largest circuit sizes exactly once.
func (x *extractor) snapshot() {
	x.snapped = true
	x.res.Snapshot = x.forest.LargestSizes(snapshotSlots)
	x.res.SnapshotAt = x.res.Processed
	x.res.SnapshotProduct = sizeProduct(x.res.Snapshot)
	x.log.Debug("snapshot taken",
		zap.Int("processed", x.res.Processed),
		zap.Ints("sizes", x.res.Snapshot),
		zap.Uint64("product", x.res.SnapshotProduct),
	)
}

// sizeProduct multiplies sizes; an empty slot contributes the identity 1.
func sizeProduct(sizes []int) uint64 {
	p := uint64(1)
	for _, s := range sizes {
		p *= uint64(s)
	}

	return p
}

// mulInt64 returns a*b and whether it fits in int64.
// The magnitudes are multiplied as a 128-bit product so no wrap goes unnoticed.
func mulInt64(a, b int64) (int64, bool) {
	// 1. Multiply magnitudes; uint64 holds |math.MinInt64|.
	hi, lo := bits.Mul64(absUint64(a), absUint64(b))
	if hi != 0 {
		return 0, false
	}
	// 2. The sign decides which limit applies: MaxInt64, or MaxInt64+1 for a negative result.
	neg := (a < 0) != (b < 0)
	if neg {
		if lo > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-v) // -MinInt64 wraps to MinInt64, whose uint64 is 1<<63
	}

	return uint64(v)
}
