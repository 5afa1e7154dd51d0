// File: aggregate.go
// Role: SetMembership, RenumberCommunities, and the multi-level graph
// aggregation pair AggregatePartition/FromCoarsePartition (SPEC_FULL.md
// §4.4 and §6).

package partition

import (
	"sort"

	"github.com/katalvlaran/leiden/graph"
)

// SetMembership replaces the membership vector wholesale and rebuilds every
// per-community statistic from scratch.
//
// Complexity: O(n + m).
func (p *Partition) SetMembership(membership []int) error {
	n := p.N()
	if len(membership) != n {
		return ErrMembershipLength
	}
	for _, c := range membership {
		if c < 0 || c >= n {
			return ErrCommunityOutOfRange
		}
	}
	copy(p.membership, membership)
	p.rebuildFromScratch()
	return nil
}

// RenumberCommunities relabels non-empty communities to a dense range
// [0, K) ordered by decreasing size (ties broken arbitrarily, per
// SPEC_FULL.md §6: "not required stable"). Returns the old-id -> new-id
// map (old ids that were never occupied map to -1).
//
// Complexity: O(n log n).
func (p *Partition) RenumberCommunities() []int {
	n := p.N()
	type occupant struct {
		id   int
		size int
	}
	var occ []occupant
	for c := 0; c < n; c++ {
		if p.count[c] > 0 {
			occ = append(occ, occupant{id: c, size: p.size[c]})
		}
	}
	sort.SliceStable(occ, func(i, j int) bool { return occ[i].size > occ[j].size })

	oldToNew := make([]int, n)
	for i := range oldToNew {
		oldToNew[i] = -1
	}
	for newID, o := range occ {
		oldToNew[o.id] = newID
	}

	newMembership := make([]int, n)
	for v := 0; v < n; v++ {
		newMembership[v] = oldToNew[p.membership[v]]
	}
	p.membership = newMembership
	p.rebuildFromScratch()

	return oldToNew
}

// AggregatePartition builds the coarsened graph G' described in
// SPEC_FULL.md §4.4 (one vertex per non-empty community, canonically
// ordered by decreasing size; coalesced edges; self-loops for intra-
// community weight) and returns the singleton partition on it, together
// with the fine-to-coarse vertex map (the renumbered membership of the
// receiver at the moment of aggregation) that FromCoarsePartition expects.
//
// The receiver is renumbered in place as a side effect.
//
// Complexity: O(n + m).
func (p *Partition) AggregatePartition() (*Partition, []int, error) {
	p.RenumberCommunities()
	fineToCoarse := p.Membership()
	agg, err := p.buildAggregate(fineToCoarse, p.numCommunities)
	if err != nil {
		return nil, nil, err
	}
	return agg, fineToCoarse, nil
}

// AggregateWithMapping builds the coarse graph implied by an externally
// supplied fine-to-coarse vertex map, instead of computing (and renumbering
// to) one of its own. Multiplex optimisation needs this: every layer shares
// one membership vector, but each layer's community *sizes* differ (they
// use different per-layer node_size arrays), so letting each layer's
// AggregatePartition renumber independently would desynchronize the
// aggregate vertex ids across layers. The caller renumbers once (via one
// layer's RenumberCommunities) and passes the resulting map to every layer.
//
// Complexity: O(n + m).
func (p *Partition) AggregateWithMapping(fineToCoarse []int) (*Partition, error) {
	n := p.N()
	if len(fineToCoarse) != n {
		return nil, ErrMembershipLength
	}
	k := 0
	for _, c := range fineToCoarse {
		if c < 0 {
			return nil, ErrCommunityOutOfRange
		}
		if c+1 > k {
			k = c + 1
		}
	}
	return p.buildAggregate(fineToCoarse, k)
}

// buildAggregate constructs the coarse graph and its singleton partition
// for a given fine-to-coarse vertex map spanning k coarse vertices.
func (p *Partition) buildAggregate(fineToCoarse []int, k int) (*Partition, error) {
	sizes := make([]int, k)
	for v := 0; v < p.N(); v++ {
		sizes[fineToCoarse[v]] += p.g.NodeSize(v)
	}

	type key struct{ a, b int }
	weights := make(map[key]float64)
	directed := p.g.Directed()
	for _, e := range p.g.Edges() {
		a, b := fineToCoarse[e.From], fineToCoarse[e.To]
		kk := key{a, b}
		if !directed && a > b {
			kk = key{b, a}
		}
		weights[kk] += e.Weight
	}

	g2, err := graph.NewGraph(k, directed, graph.WithNodeSizes(sizes))
	if err != nil {
		return nil, err
	}

	var opts []Option
	if rv, ok := p.q.(resolutionVariant); ok {
		opts = append(opts, WithResolution(rv.getResolution()))
	}
	// NewPartition's per-variant weight check only sees the edges present at
	// construction, so the partition is built on the edge-free coarse graph
	// and the summed weights are added afterwards: Significance accepts only
	// 0/1 input weights, but its aggregate edges carry sums.
	agg, err := NewPartition(g2, p.variant, opts...)
	if err != nil {
		return nil, err
	}
	for kk, w := range weights {
		if err := g2.AddEdge(kk.a, kk.b, w); err != nil {
			return nil, err
		}
	}
	agg.rebuildFromScratch()
	return agg, nil
}

// FromCoarsePartition projects a coarse partition's membership back onto
// the receiver's (finer) vertex set via coarseNodeMap (fine vertex ->
// coarse vertex, as returned by a prior AggregatePartition call), then
// rebuilds all statistics.
//
// Complexity: O(n + m).
func (p *Partition) FromCoarsePartition(coarse *Partition, coarseNodeMap []int) error {
	n := p.N()
	if len(coarseNodeMap) != n {
		return ErrMembershipLength
	}
	membership := make([]int, n)
	for v := 0; v < n; v++ {
		cv := coarseNodeMap[v]
		if cv < 0 || cv >= coarse.N() {
			return ErrVertexOutOfRange
		}
		membership[v] = coarse.MembershipOf(cv)
	}
	return p.SetMembership(membership)
}
