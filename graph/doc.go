// Package graph defines the read-only adjacency/degree provider consumed by
// the partition, localmove, and optimiser packages.
//
// A Graph has a fixed vertex count n decided at construction; vertices are
// dense integer indices [0,n). Edges are added through AddEdge and are
// otherwise immutable for the lifetime of an optimise call — the only
// caller that mutates a Graph after the fact is the aggregation step, which
// always builds a brand new Graph; it adds that Graph's edges right after
// creating the coarse Partition on it and then rebuilds that Partition's
// statistics, before anything else uses it.
//
// Self-loop and undirected-weight convention (fixed project-wide, see
// DESIGN.md): total weight counts each edge once regardless of
// directedness, and a self-loop's contribution to its community's internal
// weight is likewise counted once (it is a single edge). Its contribution
// to strength/degree is the standard Louvain/Leiden exception: an
// undirected self-loop counts TWICE toward its vertex's strength, since
// both incident "ends" of the loop land on the same vertex. This is what
// makes a community's aggregate vertex reproduce the same strength as the
// sum of its members' strengths once aggregated. This convention is
// applied consistently by every quality formula in the partition package.
//
// Concurrency: muEdge guards edges and the adjacency index; muVert guards
// per-vertex node sizes. Reads (degree/neighbor queries) take the read
// lock and are safe to call from multiple goroutines; AddEdge takes the
// write lock. Once a Graph is handed to an Optimiser no further AddEdge
// calls should occur concurrently with an in-flight optimise call.
package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNegativeVertexCount indicates n < 0 was passed to NewGraph.
	ErrNegativeVertexCount = errors.New("graph: negative vertex count")

	// ErrIndexOutOfRange indicates a vertex index outside [0,n).
	ErrIndexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNegativeNodeSize indicates a node_size < 0 was supplied.
	ErrNegativeNodeSize = errors.New("graph: negative node size")
)
