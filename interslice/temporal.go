// File: temporal.go
// Role: TemporalPartitions, wiring BuildLayers to
// optimiser.OptimisePartitionMultiplex with a CPM(resolution=0) coupling
// partition, per SPEC_FULL.md §4.7's closing sentence and leidenalg's
// find_partition_temporal.

package interslice

import (
	"github.com/katalvlaran/leiden/graph"
	"github.com/katalvlaran/leiden/optimiser"
	"github.com/katalvlaran/leiden/partition"
)

// TemporalPartitions detects communities across a sequence of time-slice
// graphs. It builds the disjoint-union layers and interslice coupling
// layer via BuildLayers, constructs one partition of variant per slice
// layer plus a CPM(0) partition for the coupling layer (the null-model
// term of a zero-resolution CPM partition is always zero, so the coupling
// layer only ever contributes its raw edge weight to the lockstep diff,
// matching the original's comment that the interslice partition choice
// "should have no cost in the optimisation"), and runs o against all of
// them with a unit weight per layer. It returns each slice's local
// membership vector and the total accumulated diff.
func TemporalPartitions(
	o *optimiser.Optimiser,
	slices []*graph.Graph,
	sliceVertexID [][]int,
	interWeight float64,
	variant partition.Variant,
	variantOpts []partition.Option,
	nIterations int,
) ([][]int, float64, error) {
	layers, coupling, err := BuildLayers(slices, sliceVertexID, interWeight)
	if err != nil {
		return nil, 0, err
	}

	partitions := make([]*partition.Partition, 0, len(layers)+1)
	for _, layer := range layers {
		p, err := partition.NewPartition(layer, variant, variantOpts...)
		if err != nil {
			return nil, 0, err
		}
		partitions = append(partitions, p)
	}
	couplingPartition, err := partition.NewPartition(coupling, partition.CPM, partition.WithResolution(0))
	if err != nil {
		return nil, 0, err
	}
	partitions = append(partitions, couplingPartition)

	weights := make([]float64, len(partitions))
	for i := range weights {
		weights[i] = 1.0
	}

	diff, err := o.OptimisePartitionMultiplex(partitions, weights, nIterations, nil)
	if err != nil {
		return nil, 0, err
	}

	global := partitions[0].Membership()
	out := make([][]int, len(slices))
	for i := range slices {
		out[i] = ProjectMembership(global, slices, i)
	}
	return out, diff, nil
}
