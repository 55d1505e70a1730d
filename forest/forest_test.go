package forest_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2025/forest"
)

// ForestSuite exercises ClusterForest operations and its partition invariants.
type ForestSuite struct {
	suite.Suite
}

// requirePartition asserts that Clusters covers 0..n-1 exactly once and matches Count and SizeOf.
func (s *ForestSuite) requirePartition(f *forest.Forest) {
	seen := make([]bool, f.Len())
	total := 0
	clusters := f.Clusters()
	s.Require().Len(clusters, f.Count())
	for _, c := range clusters {
		s.Require().NotEmpty(c)
		s.Require().Equal(len(c), f.SizeOf(c[0]))
		for _, p := range c {
			s.Require().False(seen[p], "point %d appears in two clusters", p)
			seen[p] = true
		}
		total += len(c)
	}
	s.Require().Equal(f.Len(), total)
	s.Require().NoError(f.Validate())
}

// TestSingletons verifies a fresh forest holds N clusters of size 1.
func (s *ForestSuite) TestSingletons() {
	f := forest.New(4)
	s.Equal(4, f.Len())
	s.Equal(4, f.Count())
	for p := 0; p < 4; p++ {
		s.Equal(p, f.Find(p))
		s.Equal(1, f.SizeOf(p))
		s.Equal([]int{p}, f.Members(p))
	}
	s.False(f.IsFullyConnected())
	s.Equal([]int{1, 1, 1}, f.ThreeLargestSizes())
	s.requirePartition(f)
}

// TestUnionIdempotent verifies a repeated union is a no-op that keeps sizes intact.
func (s *ForestSuite) TestUnionIdempotent() {
	f := forest.New(3)

	m := f.Union(0, 2)
	s.True(m.Merged)
	s.Equal(2, m.Size)
	s.Equal(f.Find(0), m.Root)

	again := f.Union(2, 0)
	s.False(again.Merged)
	s.Equal(m.Root, again.Root)
	s.Equal(2, again.Size)
	s.Equal(2, f.Count())
	s.True(f.Connected(0, 2))
	s.False(f.Connected(0, 1))
	s.requirePartition(f)
}

// TestUnionBySize verifies the smaller cluster is attached under the larger root.
func (s *ForestSuite) TestUnionBySize() {
	f := forest.New(5)
	big := f.Union(0, 1)
	f.Union(1, 2)

	m := f.Union(4, 0)
	s.True(m.Merged)
	s.Equal(big.Root, m.Root, "larger root must survive")
	s.Equal(4, m.Size)
	s.Equal([]int{0, 1, 2, 4}, f.Members(4))
	s.Equal([]int{4, 1}, f.LargestSizes(5))
}

// TestFullConnectivity merges everything and checks the single remaining cluster.
func (s *ForestSuite) TestFullConnectivity() {
	f := forest.New(4)
	f.Union(0, 1)
	f.Union(2, 3)
	s.False(f.IsFullyConnected())
	s.Equal([]int{2, 2}, f.ThreeLargestSizes())

	m := f.Union(3, 0)
	s.True(m.Merged)
	s.Equal(4, m.Size)
	s.True(f.IsFullyConnected())
	s.Equal([]int{4}, f.ThreeLargestSizes())
	s.Equal([][]int{{0, 1, 2, 3}}, f.Clusters())
}

// TestLargestSizesBounds covers k <= 0 and k larger than the cluster count.
func (s *ForestSuite) TestLargestSizesBounds() {
	f := forest.New(2)
	s.Empty(f.LargestSizes(0))
	s.Equal([]int{1, 1}, f.LargestSizes(10))

	empty := forest.New(0)
	s.Empty(empty.ThreeLargestSizes())
	s.False(empty.IsFullyConnected())
	s.NoError(empty.Validate())
}

// TestUnknownPointPanics verifies out-of-universe ids are fatal.
func (s *ForestSuite) TestUnknownPointPanics() {
	f := forest.New(3)
	s.PanicsWithError("forest: unknown point: 3 (universe has 3 points)", func() { f.Find(3) })
	s.Panics(func() { f.Union(-1, 0) })
	s.Panics(func() { f.Members(7) })
}

// TestRandomUnionsKeepPartition applies random unions and checks the invariants after each.
func (s *ForestSuite) TestRandomUnionsKeepPartition() {
	const n = 200
	r := rand.New(rand.NewSource(3))
	f := forest.New(n)
	// Naive labels as an oracle.
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 400; step++ {
		a, b := r.Intn(n), r.Intn(n)
		wantMerged := label[a] != label[b]
		m := f.Union(a, b)
		s.Require().Equal(wantMerged, m.Merged, "step %d union(%d,%d)", step, a, b)
		if wantMerged {
			old := label[b]
			for i := range label {
				if label[i] == old {
					label[i] = label[a]
				}
			}
		}
		if step%25 == 0 {
			s.requirePartition(f)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j += 17 {
			s.Require().Equal(label[i] == label[j], f.Connected(i, j))
		}
	}
	s.requirePartition(f)
}

func TestForestSuite(t *testing.T) {
	suite.Run(t, new(ForestSuite))
}

// TestUnionSizeConservation checks the size sum after every union in a chain.
func TestUnionSizeConservation(t *testing.T) {
	f := forest.New(10)
	for i := 1; i < 10; i++ {
		m := f.Union(i-1, i)
		require.True(t, m.Merged)
		require.Equal(t, i+1, m.Size)
		require.NoError(t, f.Validate())
		require.Equal(t, 10-i, f.Count())
	}
	require.True(t, f.IsFullyConnected())
}
