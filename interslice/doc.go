// Package interslice implements SPEC_FULL.md §4.7's slice-to-layer
// construction: converting a sequence of time-slice graphs, whose vertex
// sets may differ and whose identically-numbered vertices are not
// themselves shared indices, into the disjoint-union "layers" that
// optimiser.OptimisePartitionMultiplex requires (every layer defined on
// the same vertex set, differing only in edges and node sizes), plus the
// interslice coupling layer linking the same logical vertex across
// temporally adjacent slices.
//
// This package does no quality-function work of its own beyond
// constructing the one CPM(resolution=0) partition the coupling layer
// needs; it is pure graph surgery over the graph package.
package interslice

import "errors"

// Sentinel errors for slice-to-layer construction.
var (
	// ErrNoSlices indicates BuildLayers was called with zero slices.
	ErrNoSlices = errors.New("interslice: at least one slice is required")

	// ErrSliceVertexIDMismatch indicates len(sliceVertexID) != len(slices),
	// or a per-slice id slice whose length does not match that slice's
	// vertex count.
	ErrSliceVertexIDMismatch = errors.New("interslice: slice vertex id length mismatch")

	// ErrDuplicateVertexID indicates a slice's vertex-id slice contained a
	// repeated id — ids must be unique within a slice so coupling is
	// unambiguous.
	ErrDuplicateVertexID = errors.New("interslice: duplicate vertex id within a slice")
)
