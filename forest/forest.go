package forest

import (
	"fmt"
	"sort"
)

// Forest is an arena-indexed union-find over point ids 0..N-1.
type Forest struct {
	parent []int // parent[i] == i for roots
	size   []int // valid only at roots
	count  int   // live clusters
}

// New creates a Forest of n singleton clusters.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len returns N, the number of points in the universe.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Count returns the number of live clusters.
func (f *Forest) Count() int {
	return f.count
}

// Find returns the root id of the cluster containing p, compressing the path on the way.
// Complexity: amortized O(α(N)).
func (f *Forest) Find(p int) int {
	// 1. Reject ids outside the universe.
	f.check(p)

	// 2. Walk up until the root (parent[root] == root).
	root := p
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// 3. Path compression: point every node on the path straight at the root.
	for f.parent[p] != root {
		p, f.parent[p] = f.parent[p], root
	}

	return root
}

// Union merges the clusters containing a and b, attaching the smaller root
// under the larger (ties keep a's root). If a and b already share a cluster,
// nothing changes and Merged is false.
// Complexity: amortized O(α(N)).
func (f *Forest) Union(a, b int) Merge {
	// 1. Resolve both roots; a shared root means nothing to merge.
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return Merge{Merged: false, Root: ra, Size: f.size[ra]}
	}

	// 2. Keep the larger cluster's root as ra.
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	// 3. Attach rb under ra and move its size; rb is no longer a root.
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.size[rb] = 0
	// 4. Two live clusters became one.
	f.count--

	return Merge{Merged: true, Root: ra, Size: f.size[ra]}
}

// Connected reports whether a and b are in the same cluster.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// SizeOf returns the member count of the cluster identified by root.
// Passing a non-root id returns the size of the cluster containing it.
func (f *Forest) SizeOf(root int) int {
	return f.size[f.Find(root)]
}

// IsFullyConnected reports whether a single cluster holds all N points.
// An empty forest is not connected.
func (f *Forest) IsFullyConnected() bool {
	return f.count == 1
}

// LargestSizes returns the sizes of the k largest live clusters, largest first.
// It returns exactly min(k, Count()) values; equal sizes come out in root order.
// Complexity: O(N log N) worst case.
func (f *Forest) LargestSizes(k int) []int {
	if k <= 0 {
		return []int{}
	}
	// Collect one size per root, then order largest first.
	sizes := make([]int, 0, f.count)
	for i, p := range f.parent {
		if p == i {
			sizes = append(sizes, f.size[i])
		}
	}
	sort.SliceStable(sizes, func(i, j int) bool { return sizes[i] > sizes[j] })
	if len(sizes) > k {
		sizes = sizes[:k]
	}

	return sizes
}

// ThreeLargestSizes returns LargestSizes(3).
func (f *Forest) ThreeLargestSizes() []int {
	return f.LargestSizes(3)
}

// Members returns the ids of every point in p's cluster, ascending.
// The list is rebuilt from scratch on each call.
// Complexity: O(N·α(N)).
func (f *Forest) Members(p int) []int {
	root := f.Find(p)
	out := make([]int, 0, f.size[root])
	for i := range f.parent {
		if f.Find(i) == root {
			out = append(out, i)
		}
	}

	return out
}

// Clusters returns the full partition as a reverse index: one ascending id
// list per live cluster, clusters ordered by their smallest member.
// Complexity: O(N·α(N)).
func (f *Forest) Clusters() [][]int {
	index := make(map[int]int, f.count) // root -> position in out
	out := make([][]int, 0, f.count)
	for i := range f.parent {
		r := f.Find(i)
		pos, ok := index[r]
		if !ok {
			pos = len(out)
			index[r] = pos
			out = append(out, make([]int, 0, f.size[r]))
		}
		out[pos] = append(out[pos], i)
	}

	return out
}

// Validate checks that root sizes sum to N and that the live count matches the number of roots.
func (f *Forest) Validate() error {
	roots, total := 0, 0
	for i, p := range f.parent {
		if p == i {
			roots++
			total += f.size[i]
		}
	}
	if total != len(f.parent) {
		return fmt.Errorf("%w: cluster sizes sum to %d, want %d", ErrInvariant, total, len(f.parent))
	}
	if roots != f.count {
		return fmt.Errorf("%w: %d roots but %d live clusters recorded", ErrInvariant, roots, f.count)
	}

	return nil
}

// check panics on ids outside the universe.
func (f *Forest) check(p int) {
	if p < 0 || p >= len(f.parent) {
		panic(fmt.Errorf("%w: %d (universe has %d points)", ErrUnknownPoint, p, len(f.parent)))
	}
}
