package localmove_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leiden/graph"
	"github.com/katalvlaran/leiden/localmove"
	"github.com/katalvlaran/leiden/partition"
)

// twoTriangles mirrors two dense clusters joined by a single bridge edge —
// the canonical small graph on which move_nodes should rediscover the two
// obvious communities from the singleton partition.
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

func TestMoveNodesFindsTwoCommunities(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	diff, err := localmove.MoveNodes(p, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.GreaterOrEqual(t, diff, 0.0)

	require.Equal(t, p.MembershipOf(0), p.MembershipOf(1))
	require.Equal(t, p.MembershipOf(1), p.MembershipOf(2))
	require.Equal(t, p.MembershipOf(3), p.MembershipOf(4))
	require.Equal(t, p.MembershipOf(4), p.MembershipOf(5))
	require.NotEqual(t, p.MembershipOf(0), p.MembershipOf(3))
}

func TestMoveNodesNeverDecreasesQuality(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.Modularity)
	require.NoError(t, err)

	before := p.Quality()
	_, err = localmove.MoveNodes(p, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	after := p.Quality()

	require.GreaterOrEqual(t, after, before-1e-9)
}

func TestMoveNodesRespectsFixedVertices(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
	require.NoError(t, err)

	fixed := make([]bool, g.N())
	fixed[0] = true

	_, err = localmove.MoveNodes(p, rand.New(rand.NewSource(7)), localmove.WithFixed(fixed))
	require.NoError(t, err)
	require.Equal(t, 0, p.MembershipOf(0))
}

func TestMoveNodesRejectsNilRNG(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)

	_, err = localmove.MoveNodes(p, nil)
	require.ErrorIs(t, err, localmove.ErrNilRNG)
}

func TestMoveNodesRejectsMismatchedFixedLength(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)

	_, err = localmove.MoveNodes(p, rand.New(rand.NewSource(1)), localmove.WithFixed([]bool{true}))
	require.ErrorIs(t, err, localmove.ErrFixedLength)
}

func TestMoveNodesIsDeterministicForFixedSeed(t *testing.T) {
	run := func(seed int64) []int {
		g := twoTriangles(t)
		p, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(0.3))
		require.NoError(t, err)
		_, err = localmove.MoveNodes(p, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		return p.Membership()
	}

	require.Equal(t, run(99), run(99))
}

func TestMoveNodesConstrainedNeverCrossesSuperCommunity(t *testing.T) {
	g := twoTriangles(t)
	super, err := partition.NewPartition(g, partition.CPM, partition.WithInitialMembership(
		[]int{0, 0, 0, 1, 1, 1},
	))
	require.NoError(t, err)

	refine, err := partition.NewPartition(g, partition.CPM, partition.WithResolution(1.0))
	require.NoError(t, err)

	_, err = localmove.MoveNodesConstrained(refine, super, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	// No refine community may span two super communities.
	seen := map[int]int{}
	for v := 0; v < g.N(); v++ {
		c := refine.MembershipOf(v)
		s := super.MembershipOf(v)
		if prev, ok := seen[c]; ok {
			require.Equal(t, prev, s, "refine community %d spans multiple super communities", c)
		} else {
			seen[c] = s
		}
	}
}
