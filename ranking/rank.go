package ranking

import (
	"slices"
	"sync"

	"github.com/katalvlaran/aoc2025/positions"
)

// Rank returns every unordered pair of points ascending by (Dist2, A, B).
//
// Steps:
//  1. Allocate exactly PairCount(len(points)) edges.
//  2. Fill row i (pairs (i, j) for j > i) at offset rowStart(i, n), sequentially
//     or split into contiguous row ranges across workers.
//  3. Sort with the total order Edge.Less.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Rank(points []positions.Point, opts ...Option) []Edge {
	// Apply options over the sequential default.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Allocate the whole sequence up front; fewer than two points rank to nothing.
	n := len(points)
	edges := make([]Edge, PairCount(n))
	if len(edges) == 0 {
		return edges
	}

	// 2. Fill every row, sequentially or across workers.
	if o.Workers <= 1 {
		fillRows(edges, points, 0, n)
	} else {
		fillParallel(edges, points, o.Workers)
	}

	// 3. Sort by the total order; no two edges compare equal.
	slices.SortFunc(edges, func(a, b Edge) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	return edges
}

// rowStart is the offset of pair (i, i+1) in row-major upper-triangle order.
func rowStart(i, n int) int {
	return i*n - i*(i+1)/2
}

// fillRows writes all pairs whose lower id lies in [from, to).
func fillRows(edges []Edge, points []positions.Point, from, to int) {
	n := len(points)
	for i := from; i < to; i++ {
		// Row i starts where rows 0..i-1 (n-1, n-2, ... entries) end.
		k := rowStart(i, n)
		for j := i + 1; j < n; j++ {
			edges[k] = Edge{A: i, B: j, Dist2: points[i].Dist2(points[j])}
			k++
		}
	}
}

// fillParallel splits rows into contiguous ranges, one per worker.
// Ranges never overlap, so writes need no synchronization.
func fillParallel(edges []Edge, points []positions.Point, workers int) {
	// 1. Split rows into ceil(n/workers) sized ranges.
	n := len(points)
	rowsPerWorker := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		// 2. Clamp the range; extra workers beyond the last row are not started.
		start := w * rowsPerWorker
		if start >= n {
			break
		}
		end := min(start+rowsPerWorker, n)

		// 3. Each worker writes only the slice region of its own rows.
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			fillRows(edges, points, from, to)
		}(start, end)
	}
	// 4. Every edge is written before sorting begins.
	wg.Wait()
}
