package interslice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leiden/graph"
	"github.com/katalvlaran/leiden/interslice"
)

func twoSlices(t *testing.T) ([]*graph.Graph, [][]int) {
	t.Helper()
	g1, err := graph.NewGraph(3, false)
	require.NoError(t, err)
	require.NoError(t, g1.AddEdge(0, 1, 1))
	require.NoError(t, g1.AddEdge(1, 2, 1))

	g2, err := graph.NewGraph(2, false)
	require.NoError(t, err)
	require.NoError(t, g2.AddEdge(0, 1, 1))

	// slice 1 has global ids {10, 11, 12}; slice 2 drops id 10 and keeps 11, 12.
	ids := [][]int{{10, 11, 12}, {11, 12}}
	return []*graph.Graph{g1, g2}, ids
}

func TestBuildLayersProducesGlobalVertexSpace(t *testing.T) {
	slices, ids := twoSlices(t)
	layers, coupling, err := interslice.BuildLayers(slices, ids, 2.0)
	require.NoError(t, err)
	require.Len(t, layers, 2)

	globalN := 5 // 3 + 2
	for _, l := range layers {
		require.Equal(t, globalN, l.N())
	}
	require.Equal(t, globalN, coupling.N())
}

func TestBuildLayersNodeSizesAreGhostedOutsideOwnSlice(t *testing.T) {
	slices, ids := twoSlices(t)
	layers, _, err := interslice.BuildLayers(slices, ids, 1.0)
	require.NoError(t, err)

	// layer 0 covers global vertices 0,1,2 (slice 1) with size 1, and 3,4
	// (slice 2) as ghosts with size 0.
	for v := 0; v < 3; v++ {
		require.Equal(t, 1, layers[0].NodeSize(v))
	}
	for v := 3; v < 5; v++ {
		require.Equal(t, 0, layers[0].NodeSize(v))
	}
	for v := 0; v < 3; v++ {
		require.Equal(t, 0, layers[1].NodeSize(v))
	}
	for v := 3; v < 5; v++ {
		require.Equal(t, 1, layers[1].NodeSize(v))
	}
}

func TestBuildLayersCouplesOnlySharedIDs(t *testing.T) {
	slices, ids := twoSlices(t)
	_, coupling, err := interslice.BuildLayers(slices, ids, 3.0)
	require.NoError(t, err)

	// global vertex 0 (slice-1 local 0, id 10) has no match in slice 2,
	// so it should have no coupling weight at all.
	w, err := weightBetween(coupling, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, w)

	// global vertex 1 (slice-1 local 1, id 11) matches slice-2 local 0
	// (global 3, id 11).
	w, err = weightBetween(coupling, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 3.0, w)

	// global vertex 2 (slice-1 local 2, id 12) matches slice-2 local 1
	// (global 4, id 12).
	w, err = weightBetween(coupling, 2, 4)
	require.NoError(t, err)
	require.Equal(t, 3.0, w)
}

func weightBetween(g *graph.Graph, a, b int) (float64, error) {
	var w float64
	g.OutNeighbors(a, func(other int, weight float64) {
		if other == b {
			w += weight
		}
	})
	return w, nil
}

func TestBuildLayersRejectsNoSlices(t *testing.T) {
	_, _, err := interslice.BuildLayers(nil, nil, 1.0)
	require.ErrorIs(t, err, interslice.ErrNoSlices)
}

func TestBuildLayersRejectsSliceVertexIDMismatch(t *testing.T) {
	slices, ids := twoSlices(t)
	_, _, err := interslice.BuildLayers(slices, ids[:1], 1.0)
	require.ErrorIs(t, err, interslice.ErrSliceVertexIDMismatch)
}

func TestBuildLayersRejectsDuplicateVertexID(t *testing.T) {
	slices, _ := twoSlices(t)
	ids := [][]int{{10, 10, 12}, {11, 12}}
	_, _, err := interslice.BuildLayers(slices, ids, 1.0)
	require.ErrorIs(t, err, interslice.ErrDuplicateVertexID)
}

func TestProjectMembershipExtractsSliceLocalMembership(t *testing.T) {
	slices, ids := twoSlices(t)
	_, _, err := interslice.BuildLayers(slices, ids, 1.0)
	require.NoError(t, err)

	global := []int{0, 0, 1, 0, 1}
	require.Equal(t, []int{0, 0, 1}, interslice.ProjectMembership(global, slices, 0))
	require.Equal(t, []int{0, 1}, interslice.ProjectMembership(global, slices, 1))
}
