// Package optimiser implements the multi-level driver of SPEC_FULL.md
// §4.5/§4.6: optimise_partition, optimise_partition_multiplex, and the
// pass-through move_nodes/merge_nodes operations, all drawing from a
// single seedable RNG stream owned by the Optimiser instance.
//
// The multi-level loop is explicitly stack-based (a slice of level frames
// unwound back-to-front via partition.FromCoarsePartition) rather than
// recursive, per SPEC_FULL.md §5's bound on recursion depth.
package optimiser

import "errors"

// Sentinel errors.
var (
	// ErrNilPartition indicates OptimisePartition was called with a nil
	// partition.
	ErrNilPartition = errors.New("optimiser: partition must not be nil")

	// ErrNoLayers indicates OptimisePartitionMultiplex was called with an
	// empty partition list.
	ErrNoLayers = errors.New("optimiser: multiplex optimisation requires at least one layer")

	// ErrLayerWeightMismatch indicates len(weights) != len(partitions).
	ErrLayerWeightMismatch = errors.New("optimiser: layer weight count must match partition count")

	// ErrLayerMembershipMismatch indicates the supplied partitions did not
	// start with identical membership vectors.
	ErrLayerMembershipMismatch = errors.New("optimiser: all layers must start with identical membership")

	// ErrFixedLength indicates an is_fixed slice whose length does not
	// match the vertex count.
	ErrFixedLength = errors.New("optimiser: is_fixed length mismatch")

	// ErrUnknownRoutine indicates a Routine value outside {MoveNodesRoutine,
	// MergeNodesRoutine}.
	ErrUnknownRoutine = errors.New("optimiser: unknown routine")
)
