// File: multiplex.go
// Role: OptimisePartitionMultiplex, the SPEC_FULL.md §4.6 lockstep driver
// over L layers sharing one membership vector but each keeping its own
// quality-function bookkeeping and signed layer weight.

package optimiser

import (
	"math/rand"

	"github.com/katalvlaran/leiden/localmove"
	"github.com/katalvlaran/leiden/partition"
)

// OptimisePartitionMultiplex runs the multi-level driver across layers
// ps, each weighted by the corresponding entry of weights (negative
// weights are permitted — a layer can penalize rather than reward shared
// structure). Every layer's membership vector is moved in lockstep: a
// candidate move is accepted only once, applied identically to every
// layer, using diff = Σ_k λ_k·diffMove_k(v, c) as the acceptance score.
func (o *Optimiser) OptimisePartitionMultiplex(ps []*partition.Partition, weights []float64, nIterations int, isFixed []bool) (float64, error) {
	if len(ps) == 0 {
		return 0, ErrNoLayers
	}
	if len(weights) != len(ps) {
		return 0, ErrLayerWeightMismatch
	}
	n := ps[0].N()
	base := ps[0].Membership()
	for _, p := range ps[1:] {
		if p.N() != n {
			return 0, ErrLayerMembershipMismatch
		}
		m := p.Membership()
		for v := 0; v < n; v++ {
			if m[v] != base[v] {
				return 0, ErrLayerMembershipMismatch
			}
		}
	}
	if isFixed != nil && len(isFixed) != n {
		return 0, ErrFixedLength
	}

	var total float64
	for iter := 0; nIterations <= 0 || iter < nIterations; iter++ {
		diff, improved, err := o.runOneOuterIterationMultiplex(ps, weights, isFixed)
		if err != nil {
			return total, err
		}
		total += diff
		if nIterations <= 0 && !improved {
			break
		}
	}
	return total, nil
}

// runOneOuterIterationMultiplex mirrors runOneOuterIteration, but every
// move/merge/aggregate step operates on all layers simultaneously, kept
// synchronized via renumberShared and partition.AggregateWithMapping.
func (o *Optimiser) runOneOuterIterationMultiplex(ps []*partition.Partition, weights []float64, isFixed []bool) (float64, bool, error) {
	var total float64
	var improved bool

	type frame struct {
		ps           []*partition.Partition
		fineToCoarse []int
	}
	var stack []frame

	cur := ps
	curFixed := isFixed

	for {
		diff1, err := o.multiplexMoveOrMerge(o.optimiseRoutine, cur, weights, o.considerComms, curFixed, false, nil)
		if err != nil {
			return total, improved, err
		}
		total += diff1
		if diff1 > stabilityEpsilon {
			improved = true
		}

		var aggPs []*partition.Partition
		var fineToCoarse []int

		if o.refinePartition {
			refine := make([]*partition.Partition, len(cur))
			for i, p := range cur {
				r, rerr := cloneSingleton(p)
				if rerr != nil {
					return total, improved, rerr
				}
				refine[i] = r
			}
			refineDiff, rerr := o.multiplexMoveOrMerge(o.refineRoutine, refine, weights, o.refineConsiderComms, curFixed, true, cur[0])
			if rerr != nil {
				return total, improved, rerr
			}
			total += refineDiff

			fineToCoarse = renumberShared(refine)
			aggPs = make([]*partition.Partition, len(refine))
			for i, r := range refine {
				agg, rerr := r.AggregateWithMapping(fineToCoarse)
				if rerr != nil {
					return total, improved, rerr
				}
				aggPs[i] = agg
			}
			repSuper, rerr := superRepresentatives(refine[0], cur[0], fineToCoarse, aggPs[0].N())
			if rerr != nil {
				return total, improved, rerr
			}
			if rerr = seedFromSuper(aggPs[0], repSuper); rerr != nil {
				return total, improved, rerr
			}
			mapped := aggPs[0].Membership()
			for _, agg := range aggPs[1:] {
				if serr := agg.SetMembership(mapped); serr != nil {
					return total, improved, serr
				}
			}
		} else {
			fineToCoarse = renumberShared(cur)
			aggPs = make([]*partition.Partition, len(cur))
			for i, p := range cur {
				agg, rerr := p.AggregateWithMapping(fineToCoarse)
				if rerr != nil {
					return total, improved, rerr
				}
				aggPs[i] = agg
			}
		}

		stack = append(stack, frame{ps: cur, fineToCoarse: fineToCoarse})

		if aggPs[0].N() == cur[0].N() || aggPs[0].N() <= 1 {
			cur = aggPs
			break
		}
		cur = aggPs
		curFixed = propagateFixed(fineToCoarse, curFixed, aggPs[0].N())
	}

	for i := len(stack) - 1; i >= 0; i-- {
		fr := stack[i]
		for layer, p := range fr.ps {
			if err := p.FromCoarsePartition(cur[layer], fr.fineToCoarse); err != nil {
				return total, improved, err
			}
		}
		cur = fr.ps
	}

	return total, improved, nil
}

// renumberShared renumbers ps[0]'s communities by decreasing size and
// applies the identical old-to-new mapping to every other layer, keeping
// every layer's aggregate vertex ids synchronized even though their
// per-community node sizes differ.
func renumberShared(ps []*partition.Partition) []int {
	oldToNew := ps[0].RenumberCommunities()
	fineToCoarse := ps[0].Membership()
	for _, p := range ps[1:] {
		remapped := make([]int, p.N())
		for v, c := range p.Membership() {
			remapped[v] = oldToNew[c]
		}
		_ = p.SetMembership(remapped)
	}
	return fineToCoarse
}

// multiplexMoveOrMerge runs one shared queue/pass over the vertex set,
// scoring every candidate move by Σ λ_k·diffMove_k and applying accepted
// moves to every layer identically. When constrainedTo is non-nil, no move
// may cross its community boundaries (the refinement pass).
func (o *Optimiser) multiplexMoveOrMerge(r Routine, ps []*partition.Partition, weights []float64, policy localmove.ConsiderPolicy, isFixed []bool, constrained bool, constrainedTo *partition.Partition) (float64, error) {
	switch r {
	case MoveNodesRoutine:
		return o.multiplexMoveNodes(ps, weights, policy, isFixed, constrained, constrainedTo)
	case MergeNodesRoutine:
		return o.multiplexMergeNodes(ps, weights, policy, isFixed, constrained, constrainedTo)
	default:
		return 0, ErrUnknownRoutine
	}
}

func (o *Optimiser) multiplexMoveNodes(ps []*partition.Partition, weights []float64, policy localmove.ConsiderPolicy, isFixed []bool, constrained bool, constrainedTo *partition.Partition) (float64, error) {
	n := ps[0].N()
	order := o.rng.Perm(n)
	queue := make([]int, 0, n)
	inQueue := make([]bool, n)
	for _, v := range order {
		if isFixed != nil && isFixed[v] {
			continue
		}
		queue = append(queue, v)
		inQueue[v] = true
	}

	var commSuper []int
	if constrained && constrainedTo != nil {
		commSuper = buildCommSuper(ps[0], constrainedTo)
	}

	var total float64
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		inQueue[v] = false

		best, bestDiff, err := o.bestMultiplexCandidate(ps, v, weights, policy, constrainedTo, commSuper)
		if err != nil {
			return total, err
		}
		cur := ps[0].MembershipOf(v)
		if best == cur {
			continue
		}
		for _, p := range ps {
			if err := p.MoveNode(v, best); err != nil {
				return total, err
			}
		}
		if commSuper != nil {
			commSuper[best] = constrainedTo.MembershipOf(v)
		}
		total += bestDiff

		g := ps[0].Graph()
		add := func(other int, _ float64) {
			if other == v || (isFixed != nil && isFixed[other]) || inQueue[other] {
				return
			}
			queue = append(queue, other)
			inQueue[other] = true
		}
		g.OutNeighbors(v, add)
		if g.Directed() {
			g.InNeighbors(v, add)
		}
	}
	return total, nil
}

func (o *Optimiser) multiplexMergeNodes(ps []*partition.Partition, weights []float64, policy localmove.ConsiderPolicy, isFixed []bool, constrained bool, constrainedTo *partition.Partition) (float64, error) {
	n := ps[0].N()

	var commSuper []int
	if constrained && constrainedTo != nil {
		commSuper = buildCommSuper(ps[0], constrainedTo)
	}

	var total float64
	for _, v := range o.rng.Perm(n) {
		if isFixed != nil && isFixed[v] {
			continue
		}
		cur := ps[0].MembershipOf(v)
		cnt, err := ps[0].Count(cur)
		if err != nil {
			return total, err
		}
		if cnt != 1 {
			continue
		}

		best, bestDiff, err := o.bestMultiplexCandidate(ps, v, weights, policy, constrainedTo, commSuper)
		if err != nil {
			return total, err
		}
		if best == cur {
			continue
		}
		for _, p := range ps {
			if err := p.MoveNode(v, best); err != nil {
				return total, err
			}
		}
		if commSuper != nil {
			commSuper[best] = constrainedTo.MembershipOf(v)
		}
		total += bestDiff
	}
	return total, nil
}

// buildCommSuper mirrors localmove's constraintTracker bookkeeping: for
// every community id currently in use, the super-community (in
// constrainedTo) that all of its current members share.
func buildCommSuper(p, constrainedTo *partition.Partition) []int {
	n := p.N()
	cs := make([]int, n)
	for i := range cs {
		cs[i] = -1
	}
	for v := 0; v < n; v++ {
		c := p.MembershipOf(v)
		if cs[c] == -1 {
			cs[c] = constrainedTo.MembershipOf(v)
		}
	}
	return cs
}

// bestMultiplexCandidate enumerates candidates from every layer's edges
// (layers share membership but not edges, so a neighbor may exist in one
// layer only) and scores each by the weighted sum of
// per-layer diffMove. When commSuper is non-nil, a candidate whose
// recorded occupant's super-community differs from v's is skipped, per the
// move_nodes_constrained invariant.
func (o *Optimiser) bestMultiplexCandidate(ps []*partition.Partition, v int, weights []float64, policy localmove.ConsiderPolicy, constrainedTo *partition.Partition, commSuper []int) (int, float64, error) {
	cur := ps[0].MembershipOf(v)
	best, bestDiff := cur, 0.0

	cands := multiplexCandidates(ps, v, policy, o.rng, o.considerEmptyCommunity)
	for _, c := range cands {
		if c == cur {
			continue
		}
		if commSuper != nil && commSuper[c] != -1 && commSuper[c] != constrainedTo.MembershipOf(v) {
			continue
		}
		var diff float64
		for i, p := range ps {
			d, err := p.DiffMove(v, c)
			if err != nil {
				return cur, 0, err
			}
			diff += weights[i] * d
		}
		if diff > bestDiff {
			bestDiff, best = diff, c
		}
	}
	return best, bestDiff, nil
}

// multiplexCandidates mirrors localmove's candidate policies. Neighbor
// communities are the union over all layers' edges; community occupancy is
// read from ps[0], since every layer shares the same membership vector.
// For RandNeighComm a community's weight is v's edge weight toward it summed
// over the layers.
func multiplexCandidates(ps []*partition.Partition, v int, policy localmove.ConsiderPolicy, rng *rand.Rand, considerEmpty bool) []int {
	p := ps[0]
	var neighComms []int
	if policy == localmove.AllNeighComms || policy == localmove.RandNeighComm {
		for _, lp := range ps {
			for _, c := range lp.NeighborCommunities(v) {
				neighComms = appendUniqueMultiplex(neighComms, c)
			}
		}
	}
	switch policy {
	case localmove.AllNeighComms:
		out := neighComms
		if considerEmpty {
			if ec, ok := p.EmptyCommunity(); ok {
				out = appendUniqueMultiplex(out, ec)
			}
		}
		return out
	case localmove.AllComms:
		n := p.N()
		out := make([]int, 0, n)
		for c := 0; c < n; c++ {
			if cnt, _ := p.Count(c); cnt > 0 {
				out = append(out, c)
			}
		}
		if considerEmpty {
			if ec, ok := p.EmptyCommunity(); ok {
				out = appendUniqueMultiplex(out, ec)
			}
		}
		return out
	case localmove.RandComm:
		n := p.N()
		nonEmpty := make([]int, 0, n)
		for c := 0; c < n; c++ {
			if cnt, _ := p.Count(c); cnt > 0 {
				nonEmpty = append(nonEmpty, c)
			}
		}
		if len(nonEmpty) == 0 {
			return nil
		}
		return []int{nonEmpty[rng.Intn(len(nonEmpty))]}
	case localmove.RandNeighComm:
		neigh := neighComms
		if len(neigh) == 0 {
			return nil
		}
		var total float64
		weightsByC := make([]float64, len(neigh))
		for i, c := range neigh {
			for _, lp := range ps {
				w, _ := lp.WeightToComm(v, c)
				weightsByC[i] += w
			}
			total += weightsByC[i]
		}
		if total <= 0 {
			return []int{neigh[rng.Intn(len(neigh))]}
		}
		r := rng.Float64() * total
		for i, w := range weightsByC {
			r -= w
			if r <= 0 {
				return []int{neigh[i]}
			}
		}
		return []int{neigh[len(neigh)-1]}
	default:
		return nil
	}
}

func appendUniqueMultiplex(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
