// File: types.go
// Role: the Variant enum, the shared qualityFunction specialization
// surface, and the Partition struct itself.

package partition

import "github.com/katalvlaran/leiden/graph"

// Variant selects one of the six supported quality functions, per
// SPEC_FULL.md §6.
type Variant int

const (
	// Modularity implements Newman/Leicht-Newman modularity.
	Modularity Variant = iota
	// CPM implements the Constant Potts Model.
	CPM
	// RBConfiguration implements the Reichardt-Bornholdt configuration model.
	RBConfiguration
	// RBER implements the Reichardt-Bornholdt Erdős–Rényi model.
	RBER
	// Surprise implements the (asymptotic) Surprise quality function.
	Surprise
	// Significance implements the Significance quality function.
	Significance
)

// qualityFunction is the specialization surface every variant implements.
// quality and diffMove are defined in closed form per variant; the shared
// Partition bookkeeping in stats.go/moves.go gives each variant everything
// it needs in O(deg(v) + affected communities).
type qualityFunction interface {
	// name identifies the variant for error messages.
	name() string

	// acceptsWeight validates a candidate edge weight at construction time.
	acceptsWeight(w float64) error

	// quality computes the variant's objective for the current partition
	// state, optionally overriding the resolution parameter (ignored by
	// variants that don't support one).
	quality(p *Partition, overrideResolution *float64) float64

	// diffMove computes quality(after moving v to cNew) - quality(before),
	// without materializing the "after" state.
	diffMove(p *Partition, v, cNew int) float64
}

// resolutionVariant is implemented by the three variants with a linear
// resolution parameter (CPM, RBConfiguration, RBER), per SPEC_FULL.md's
// LinearResolutionParameterVertexPartition note.
type resolutionVariant interface {
	qualityFunction
	getResolution() float64
	setResolution(float64)
	bisectValue(p *Partition) float64
}

// Partition is the mutable quality-function bookkeeping of SPEC_FULL.md §3.
// Community ids live in [0,n); not every id in that range need be in use.
type Partition struct {
	g        *graph.Graph
	variant  Variant
	q        qualityFunction
	membership []int

	// Per-community statistics, all slices length g.N().
	size    []int     // size(c): Σ node_size over members
	count   []int     // count(c): vertex count
	wIn     []float64 // w_in(c): internal edge weight
	strOut  []float64 // Σ out-strength (or total strength, undirected) over members
	strIn   []float64 // Σ in-strength over members (== strOut slice for undirected)

	numCommunities int     // count of communities with count(c) > 0
	freeComms      []int   // stack of currently-empty community ids, for O(1) reuse
	inFreeList     []bool  // inFreeList[c]: c is currently on freeComms

	sumWIn       float64 // Σ_c wIn(c), maintained incrementally (Surprise)
	sumBinomSize float64 // Σ_c binom(size(c),2), maintained incrementally (Surprise)

	// scratch is the sparse neighbor-community -> weight cache reused
	// across diff_move/MoveNode calls (SPEC_FULL.md §3).
	scratchOut       map[int]float64
	scratchIn        map[int]float64
	touched          []int
	scratchVertex    int // vertex the scratch cache currently describes, or -1
	scratchCommunity int // membership[scratchVertex] at the time beginMove ran
	selfLoop         float64
}

// N returns the number of vertices (delegates to the underlying graph).
func (p *Partition) N() int { return p.g.N() }

// Graph returns the graph this partition is defined on.
func (p *Partition) Graph() *graph.Graph { return p.g }

// Variant returns the quality variant this partition was constructed with.
func (p *Partition) Variant() Variant { return p.variant }

// Membership returns a defensive copy of the membership vector.
func (p *Partition) Membership() []int {
	out := make([]int, len(p.membership))
	copy(out, p.membership)
	return out
}

// MembershipOf returns the community of vertex v.
func (p *Partition) MembershipOf(v int) int { return p.membership[v] }

// NumCommunities returns the number of non-empty communities.
func (p *Partition) NumCommunities() int { return p.numCommunities }
