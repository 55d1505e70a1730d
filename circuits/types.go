package circuits

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/ranking"
)

var (
	// ErrTooFewPoints indicates fewer than two points: no edge can achieve full connectivity.
	ErrTooFewPoints = errors.New("circuits: at least two points are required")

	// ErrInvalidThreshold indicates a snapshot threshold below 1.
	ErrInvalidThreshold = errors.New("circuits: threshold must be at least 1")

	// ErrProductOverflow indicates the closing x-coordinate product does not fit in int64.
	ErrProductOverflow = errors.New("circuits: closing product overflows int64")
)

// DefaultThreshold is the number of processed edges after which Part 1 is read.
const DefaultThreshold = 1000

// Options configures Solve.
type Options struct {
	// Threshold is the processed-edge count that triggers the snapshot.
	Threshold int
	// Workers is forwarded to ranking.WithWorkers.
	Workers int
	// Logger receives debug events for the snapshot and the closing merge.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithThreshold sets the snapshot threshold.
func WithThreshold(n int) Option {
	return func(o *Options) {
		o.Threshold = n
	}
}

// WithWorkers sets the number of pair-generation workers used while ranking.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the logger. A nil logger leaves the no-op default in place.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Threshold=DefaultThreshold, sequential ranking and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Workers:   0,
		Logger:    zap.NewNop(),
	}
}

// Result carries both answers and the merge-sequence facts behind them.
type Result struct {
	// Snapshot holds the circuit sizes read for Part 1, largest first (at most three).
	Snapshot []int
	// SnapshotAt is the processed-edge count at which Snapshot was taken.
	SnapshotAt int
	// SnapshotProduct is Part 1: the product of Snapshot, missing slots counted as 1.
	SnapshotProduct uint64

	// ClosingEdge is the edge whose merge achieved full connectivity.
	ClosingEdge ranking.Edge
	// ClosingProduct is Part 2: the product of ClosingEdge's endpoint x-coordinates.
	ClosingProduct int64

	// Processed counts every edge dequeued, merged or redundant.
	Processed int
	// Merges counts edges that joined two distinct circuits; always N-1.
	Merges int
}
