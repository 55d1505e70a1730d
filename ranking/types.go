package ranking

import (
	"fmt"
	"math"
)

// Edge is an unordered pair of point ids with their squared distance.
// Invariant: A < B.
type Edge struct {
	A, B  int
	Dist2 int64
}

// Distance returns the Euclidean distance, for display only.
func (e Edge) Distance() float64 {
	return math.Sqrt(float64(e.Dist2))
}

// String renders e as "A-B (d²=Dist2)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d (d²=%d)", e.A, e.B, e.Dist2)
}

// Less reports whether e ranks strictly before o: by Dist2, then A, then B.
func (e Edge) Less(o Edge) bool {
	if e.Dist2 != o.Dist2 {
		return e.Dist2 < o.Dist2
	}
	if e.A != o.A {
		return e.A < o.A
	}

	return e.B < o.B
}

// Options configures ranking.
type Options struct {
	// Workers is the number of goroutines generating pairs. Values <= 1 run sequentially.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the number of pair-generation workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns sequential ranking.
func DefaultOptions() Options {
	return Options{Workers: 0}
}

// PairCount returns C(n,2), the length of a ranked sequence over n points.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
