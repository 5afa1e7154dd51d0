// Package partition implements the mutable quality-function bookkeeping
// described in SPEC_FULL.md §3/§4.1: a membership vector plus aggregate
// per-community statistics (size, count, internal weight, strengths) kept
// incrementally correct under MoveNode, shared across six concrete quality
// variants (Modularity, RBConfiguration, RBER, CPM, Surprise, Significance).
//
// Ownership: a Partition is single-goroutine-owned for the duration of an
// optimise call, mirroring the optimiser's cooperative single-threaded
// model (SPEC_FULL.md §5). It holds no lock of its own; the Graph it
// references is read through Graph's own locks.
//
// Every public mutator (MoveNode, SetMembership, FromCoarsePartition,
// RenumberCommunities) either completes fully or leaves the Partition
// unchanged — there are no partially-applied moves visible to callers.
package partition

import "errors"

// Sentinel errors. Mirrors the taxonomy of SPEC_FULL.md §4.8/§7.
var (
	// ErrMembershipLength indicates a membership slice whose length does
	// not match the graph's vertex count.
	ErrMembershipLength = errors.New("partition: membership length mismatch")

	// ErrCommunityOutOfRange indicates a community id outside [0,n).
	ErrCommunityOutOfRange = errors.New("partition: community id out of range")

	// ErrVertexOutOfRange indicates a vertex index outside [0,n).
	ErrVertexOutOfRange = errors.New("partition: vertex index out of range")

	// ErrNegativeWeight indicates a quality variant that requires
	// non-negative edge weights was constructed on a graph carrying a
	// negative weight.
	ErrNegativeWeight = errors.New("partition: negative edge weight not allowed for this variant")

	// ErrWeightedGraph indicates Significance was constructed on a graph
	// with any edge weight other than 0 or 1.
	ErrWeightedGraph = errors.New("partition: significance requires an unweighted (binary) graph")

	// ErrResolutionNotSupported indicates resolution_parameter was read or
	// set on a variant that does not support it (Modularity, Surprise,
	// Significance).
	ErrResolutionNotSupported = errors.New("partition: resolution parameter not supported by this variant")

	// ErrUnknownVariant indicates NewPartition was called with an
	// unrecognised Variant value.
	ErrUnknownVariant = errors.New("partition: unknown quality variant")
)
