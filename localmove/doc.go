// Package localmove implements the fast local-move and local-merge
// routines of SPEC_FULL.md §4.2/§4.3: move_nodes, move_nodes_constrained,
// merge_nodes, merge_nodes_constrained.
//
// Randomness (vertex order, RAND_COMM/RAND_NEIGH_COMM sampling, tie-breaks)
// is never generated internally — every entry point takes an explicit
// *rand.Rand, owned by the caller (normally optimiser.Optimiser), so two
// calls with the same seed, graph, and configuration produce bit-identical
// results.
package localmove

import "errors"

// Sentinel errors.
var (
	// ErrFixedLength indicates an is_fixed slice whose length does not
	// match the partition's vertex count.
	ErrFixedLength = errors.New("localmove: is_fixed length mismatch")

	// ErrNegativeMaxCommSize indicates a negative max_comm_size.
	ErrNegativeMaxCommSize = errors.New("localmove: max_comm_size must be non-negative")

	// ErrNilConstraint indicates a constrained call made without a
	// constraining partition.
	ErrNilConstraint = errors.New("localmove: constrained call requires a non-nil constraining partition")

	// ErrNilRNG indicates a call made without an RNG stream.
	ErrNilRNG = errors.New("localmove: rng must not be nil")
)
