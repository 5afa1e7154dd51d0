package optimiser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leiden/graph"
	"github.com/katalvlaran/leiden/optimiser"
	"github.com/katalvlaran/leiden/partition"
)

// twoTriangles mirrors the canonical two-dense-clusters-plus-bridge graph
// used throughout localmove's tests.
func twoTriangles(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(6, false)
	require.NoError(t, err)
	for _, e := range [][3]int{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
		{3, 4, 1}, {4, 5, 1}, {3, 5, 1},
		{2, 3, 1},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], float64(e[2])))
	}
	return g
}

func TestOptimisePartitionFindsTwoCommunities(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	o := optimiser.New(optimiser.WithRNGSeed(1))
	diff, err := o.OptimisePartition(p, optimiser.DefaultIterations, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, diff, 0.0)

	require.Equal(t, p.MembershipOf(0), p.MembershipOf(1))
	require.Equal(t, p.MembershipOf(1), p.MembershipOf(2))
	require.Equal(t, p.MembershipOf(3), p.MembershipOf(4))
	require.Equal(t, p.MembershipOf(4), p.MembershipOf(5))
	require.NotEqual(t, p.MembershipOf(0), p.MembershipOf(3))
}

func TestOptimisePartitionNeverDecreasesQuality(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.Modularity)
	require.NoError(t, err)

	before := p.Quality()
	o := optimiser.New(optimiser.WithRNGSeed(7))
	_, err = o.OptimisePartition(p, optimiser.DefaultIterations, nil)
	require.NoError(t, err)
	after := p.Quality()

	require.GreaterOrEqual(t, after, before-1e-9)
}

func TestOptimisePartitionRejectsNilPartition(t *testing.T) {
	o := optimiser.New()
	_, err := o.OptimisePartition(nil, 1, nil)
	require.ErrorIs(t, err, optimiser.ErrNilPartition)
}

func TestOptimisePartitionRejectsFixedLengthMismatch(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)

	o := optimiser.New()
	_, err = o.OptimisePartition(p, 1, []bool{true})
	require.ErrorIs(t, err, optimiser.ErrFixedLength)
}

func TestOptimisePartitionRespectsFixedVertices(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	fixed := make([]bool, g.N())
	fixed[0] = true

	o := optimiser.New(optimiser.WithRNGSeed(3))
	_, err = o.OptimisePartition(p, optimiser.DefaultIterations, fixed)
	require.NoError(t, err)
	require.Equal(t, 0, p.MembershipOf(0))
}

func TestOptimisePartitionIsDeterministicForFixedSeed(t *testing.T) {
	run := func(seed uint64) []int {
		g := twoTriangles(t)
		p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
		require.NoError(t, err)
		o := optimiser.New(optimiser.WithRNGSeed(seed))
		_, err = o.OptimisePartition(p, optimiser.DefaultIterations, nil)
		require.NoError(t, err)
		return p.Membership()
	}

	require.Equal(t, run(99), run(99))
}

func TestOptimisePartitionUntilStableTerminates(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	o := optimiser.New(optimiser.WithRNGSeed(4))
	diff, err := o.OptimisePartition(p, 0, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, diff, 0.0)
}

func TestOptimisePartitionWithoutRefinementStillConverges(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	o := optimiser.New(optimiser.WithRNGSeed(2), optimiser.WithRefinePartition(false))
	before := p.Quality()
	_, err = o.OptimisePartition(p, optimiser.DefaultIterations, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, p.Quality(), before-1e-9)
}

func TestMoveNodesPassthrough(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	o := optimiser.New(optimiser.WithRNGSeed(9))
	before := p.Quality()
	_, err = o.MoveNodes(p, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, p.Quality(), before-1e-9)
}

func TestMergeNodesPassthrough(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	o := optimiser.New(optimiser.WithRNGSeed(9))
	before := p.Quality()
	_, err = o.MergeNodes(p, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, p.Quality(), before-1e-9)
}
