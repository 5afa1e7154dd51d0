package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leiden/graph"
	"github.com/katalvlaran/leiden/partition"
)

// twoTriangles builds two triangles {0,1,2} and {3,4,5} joined by a single
// bridge edge 2-3, used throughout to exercise a move that crosses a real
// community boundary.
func twoTriangles(t *testing.T) *graph.Graph {
	t.Helper()
	return mustGraph(t, 6, false, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
		{3, 4, 1}, {4, 5, 1}, {3, 5, 1},
		{2, 3, 1},
	})
}

// TestDiffMoveMatchesQualityDelta is the central correctness property from
// SPEC_FULL.md §8: diff_move(v, c) must equal quality(after) - quality(before)
// to within rounding, for every variant.
func TestDiffMoveMatchesQualityDelta(t *testing.T) {
	cases := []struct {
		name    string
		variant partition.Variant
		opts    []partition.Option
	}{
		{"Modularity", partition.Modularity, nil},
		{"CPM", partition.CPM, []partition.Option{partition.WithResolution(0.5)}},
		{"RBConfiguration", partition.RBConfiguration, []partition.Option{partition.WithResolution(1.0)}},
		{"RBER", partition.RBER, []partition.Option{partition.WithResolution(1.0)}},
		{"Surprise", partition.Surprise, nil},
		{"Significance", partition.Significance, nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := twoTriangles(t)
			p, err := partition.NewPartition(g, tc.variant, tc.opts...)
			require.NoError(t, err)

			before := p.Quality()
			diff, err := p.DiffMove(2, 3)
			require.NoError(t, err)

			require.NoError(t, p.MoveNode(2, 3))
			after := p.Quality()

			require.InDelta(t, after-before, diff, 1e-9)
		})
	}
}

// TestDiffMoveZeroForOwnCommunity exercises the self-community special case.
func TestDiffMoveZeroForOwnCommunity(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)

	diff, err := p.DiffMove(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, diff)
}

// TestMoveNodeIsNoOpForSameCommunity verifies moving to the current
// community doesn't perturb bookkeeping.
func TestMoveNodeIsNoOpForSameCommunity(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)

	before := p.Membership()
	require.NoError(t, p.MoveNode(2, 2))
	require.Equal(t, before, p.Membership())
}

// TestMoveNodeMaintainsInvariants checks the partition-level invariants
// from SPEC_FULL.md §3 after a sequence of moves: size/count totals and
// the w_in accounting.
func TestMoveNodeMaintainsInvariants(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)

	require.NoError(t, p.MoveNode(0, 1))
	require.NoError(t, p.MoveNode(2, 3))
	require.NoError(t, p.MoveNode(5, 4))

	totalSize, totalCount := 0, 0
	for c := 0; c < p.N(); c++ {
		sz, err := p.Size(c)
		require.NoError(t, err)
		cnt, err := p.Count(c)
		require.NoError(t, err)
		totalSize += sz
		totalCount += cnt
	}
	require.Equal(t, g.TotalNodeSize(), totalSize)
	require.Equal(t, g.N(), totalCount)

	var sumWIn float64
	for c := 0; c < p.N(); c++ {
		w, err := p.WIn(c)
		require.NoError(t, err)
		sumWIn += w
	}
	require.InDelta(t, sumWIn, p.TotalWeightInAllComms(), 1e-9)
}

// TestWeightToCommSymmetricOnUndirectedGraph verifies weight_to_comm and
// weight_from_comm agree for undirected graphs.
func TestWeightToCommSymmetricOnUndirectedGraph(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)

	to, err := p.WeightToComm(2, 1)
	require.NoError(t, err)
	from, err := p.WeightFromComm(2, 1)
	require.NoError(t, err)
	require.Equal(t, to, from)
}

// TestNeighborCommunitiesIncludesOwnCommunity verifies v's own community
// appears in NeighborCommunities when v has an intra-community edge.
func TestNeighborCommunitiesIncludesOwnCommunity(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithInitialMembership(
		[]int{0, 0, 0, 1, 1, 1},
	))
	require.NoError(t, err)

	comms := p.NeighborCommunities(0)
	require.Contains(t, comms, p.MembershipOf(0))
}

func TestEmptyCommunityAfterDraining(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithInitialMembership(
		[]int{0, 0, 0, 1, 1, 1},
	))
	require.NoError(t, err)

	_, ok := p.EmptyCommunity()
	require.True(t, ok, "communities 2..5 start empty under this membership")

	require.NoError(t, p.MoveNode(3, 0))
	require.NoError(t, p.MoveNode(4, 0))
	require.NoError(t, p.MoveNode(5, 0))

	_, ok = p.EmptyCommunity()
	require.True(t, ok, "community 1 should now be free after draining")
}
