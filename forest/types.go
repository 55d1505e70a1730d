package forest

import "errors"

var (
	// ErrUnknownPoint indicates a point id outside the closed universe 0..N-1.
	// It is raised by panic: the point set is fixed at construction.
	ErrUnknownPoint = errors.New("forest: unknown point")

	// ErrInvariant indicates the size bookkeeping no longer describes a partition.
	ErrInvariant = errors.New("forest: invariant violated")
)

// Merge reports the outcome of a Union call.
type Merge struct {
	Merged bool // false when both points were already in the same cluster
	Root   int  // root of the cluster now holding both points
	Size   int  // member count of that cluster
}
