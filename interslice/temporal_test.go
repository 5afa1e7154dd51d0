package interslice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leiden/graph"
	"github.com/katalvlaran/leiden/interslice"
	"github.com/katalvlaran/leiden/optimiser"
	"github.com/katalvlaran/leiden/partition"
)

func TestTemporalPartitionsFindsPersistentCommunity(t *testing.T) {
	// Two identical two-triangle slices, sharing vertex ids across the
	// single interslice coupling, should settle on the same two
	// communities in both slices.
	buildTriangle := func() *graph.Graph {
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

	slices := []*graph.Graph{buildTriangle(), buildTriangle()}
	ids := [][]int{{0, 1, 2, 3, 4, 5}, {0, 1, 2, 3, 4, 5}}

	o := optimiser.New(optimiser.WithRNGSeed(1))
	memberships, diff, err := interslice.TemporalPartitions(
		o, slices, ids, 1.0,
		partition.CPM, []partition.Option{partition.WithResolution(0.3)},
		optimiser.DefaultIterations,
	)
	require.NoError(t, err)
	require.GreaterOrEqual(t, diff, 0.0)
	require.Len(t, memberships, 2)

	for _, m := range memberships {
		require.Equal(t, m[0], m[1])
		require.Equal(t, m[1], m[2])
		require.Equal(t, m[3], m[4])
		require.NotEqual(t, m[0], m[3])
	}
	require.Equal(t, memberships[0], memberships[1])
}

func TestTemporalPartitionsPropagatesBuildLayersErrors(t *testing.T) {
	o := optimiser.New()
	_, _, err := interslice.TemporalPartitions(
		o, nil, nil, 1.0, partition.Modularity, nil, 1,
	)
	require.ErrorIs(t, err, interslice.ErrNoSlices)
}
