package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leiden/partition"
)

// TestAggregatePartitionPreservesQuality is the aggregation identity from
// SPEC_FULL.md §3: aggregate(P).quality() == P.quality() for every variant.
func TestAggregatePartitionPreservesQuality(t *testing.T) {
	variants := []partition.Variant{
		partition.Modularity,
		partition.CPM,
		partition.RBConfiguration,
		partition.RBER,
		partition.Surprise,
		partition.Significance,
	}

	for _, variant := range variants {
		variant := variant
		t.Run(variantName(variant), func(t *testing.T) {
			g := twoTriangles(t)
			p, err := partition.NewPartition(g, variant, partition.WithInitialMembership(
				[]int{0, 0, 0, 1, 1, 1},
			))
			require.NoError(t, err)

			before := p.Quality()
			agg, fineToCoarse, err := p.AggregatePartition()
			require.NoError(t, err)
			require.Len(t, fineToCoarse, g.N())

			after := agg.Quality()
			require.InDelta(t, before, after, 1e-9)
		})
	}
}

func TestAggregatePartitionVertexCountMatchesCommunities(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithInitialMembership(
		[]int{0, 0, 0, 1, 1, 1},
	))
	require.NoError(t, err)

	agg, _, err := p.AggregatePartition()
	require.NoError(t, err)
	require.Equal(t, 2, agg.N())
	require.Equal(t, []int{0, 1}, agg.Membership())
}

func TestFromCoarsePartitionRoundTrips(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithInitialMembership(
		[]int{0, 0, 0, 1, 1, 1},
	))
	require.NoError(t, err)

	agg, fineToCoarse, err := p.AggregatePartition()
	require.NoError(t, err)

	// Move every aggregate vertex into a single coarse community and
	// propagate it back; every fine vertex should land together.
	require.NoError(t, agg.MoveNode(1, 0))

	fine, err := partition.NewPartition(g, partition.CPM)
	require.NoError(t, err)
	require.NoError(t, fine.FromCoarsePartition(agg, fineToCoarse))

	want := fine.MembershipOf(0)
	for v := 0; v < g.N(); v++ {
		require.Equal(t, want, fine.MembershipOf(v))
	}
}

func TestRenumberCommunitiesOrdersByDecreasingSize(t *testing.T) {
	g := twoTriangles(t)
	p, err := partition.NewPartition(g, partition.CPM, partition.WithInitialMembership(
		[]int{0, 1, 1, 1, 2, 2},
	))
	require.NoError(t, err)

	oldToNew := p.RenumberCommunities()
	require.Equal(t, 0, oldToNew[1], "largest community (size 3) should become id 0")

	sizes := make([]int, p.N())
	for c := 0; c < p.N(); c++ {
		sz, _ := p.Size(c)
		sizes[c] = sz
	}
	for c := 1; c < p.NumCommunities(); c++ {
		require.GreaterOrEqual(t, sizes[c-1], sizes[c])
	}
}

func variantName(v partition.Variant) string {
	switch v {
	case partition.Modularity:
		return "Modularity"
	case partition.CPM:
		return "CPM"
	case partition.RBConfiguration:
		return "RBConfiguration"
	case partition.RBER:
		return "RBER"
	case partition.Surprise:
		return "Surprise"
	case partition.Significance:
		return "Significance"
	default:
		return "unknown"
	}
}
