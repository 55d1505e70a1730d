package ranking_test

import (
	"testing"

	"github.com/katalvlaran/aoc2025/ranking"
)

// BenchmarkRank measures sequential ranking of 1000 points (499500 pairs).
func BenchmarkRank(b *testing.B) {
	pts := randomPoints(1000, 100000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ranking.Rank(pts)
	}
}

// BenchmarkRankParallel measures the same workload with eight generation workers.
func BenchmarkRankParallel(b *testing.B) {
	pts := randomPoints(1000, 100000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ranking.Rank(pts, ranking.WithWorkers(8))
	}
}
