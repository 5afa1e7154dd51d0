// File: optimise.go
// Role: OptimisePartition, the stack-based non-recursive multi-level driver
// of SPEC_FULL.md §4.5, and the pass-through move_nodes/merge_nodes wrappers
// named in §6's External Interfaces list.

package optimiser

import (
	"github.com/katalvlaran/leiden/localmove"
	"github.com/katalvlaran/leiden/partition"
)

// levelFrame remembers one level of the aggregation stack: the partition
// built at that level, and the fine-to-coarse vertex map that relates it to
// the level below (nil for the bottom/original level).
type levelFrame struct {
	p            *partition.Partition
	fineToCoarse []int
}

// OptimisePartition runs the full multi-level optimisation loop on p,
// mutating its membership in place and returning the total accumulated
// diff. nIterations bounds the number of outer iterations; a non-positive
// value means "run until an outer iteration makes no further progress",
// per SPEC_FULL.md §4.5.
func (o *Optimiser) OptimisePartition(p *partition.Partition, nIterations int, isFixed []bool) (float64, error) {
	if p == nil {
		return 0, ErrNilPartition
	}
	if isFixed != nil && len(isFixed) != p.N() {
		return 0, ErrFixedLength
	}

	var total float64
	for iter := 0; nIterations <= 0 || iter < nIterations; iter++ {
		diff, improved, err := o.runOneOuterIteration(p, isFixed)
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

// runOneOuterIteration runs one bottom-to-top-then-top-to-bottom sweep of
// the multi-level driver: repeatedly move-then-aggregate until aggregation
// no longer reduces the vertex count or leaves at most one vertex, then
// unwind the resulting stack of levels back onto p via
// partition.FromCoarsePartition.
func (o *Optimiser) runOneOuterIteration(p *partition.Partition, isFixed []bool) (float64, bool, error) {
	var total float64
	var improved bool

	var stack []levelFrame
	cur := p
	curFixed := isFixed

	for {
		diff1, err := o.runRoutine(o.optimiseRoutine, cur, o.considerComms, curFixed)
		if err != nil {
			return total, improved, err
		}
		total += diff1
		if diff1 > stabilityEpsilon {
			improved = true
		}

		var refineDiff float64
		var aggP *partition.Partition
		var fineToCoarse []int

		if o.refinePartition {
			refine, rerr := cloneSingleton(cur)
			if rerr != nil {
				return total, improved, rerr
			}
			refineDiff, rerr = o.runRoutineConstrained(o.refineRoutine, refine, cur, o.refineConsiderComms, curFixed)
			if rerr != nil {
				return total, improved, rerr
			}
			total += refineDiff

			aggP, fineToCoarse, rerr = refine.AggregatePartition()
			if rerr != nil {
				return total, improved, rerr
			}
			repSuper, rerr := superRepresentatives(refine, cur, fineToCoarse, aggP.N())
			if rerr != nil {
				return total, improved, rerr
			}
			if rerr = seedFromSuper(aggP, repSuper); rerr != nil {
				return total, improved, rerr
			}
		} else {
			aggP, fineToCoarse, err = cur.AggregatePartition()
			if err != nil {
				return total, improved, err
			}
		}

		stack = append(stack, levelFrame{p: cur, fineToCoarse: fineToCoarse})

		if aggP.N() == cur.N() || aggP.N() <= 1 {
			cur = aggP
			break
		}

		cur = aggP
		curFixed = propagateFixed(fineToCoarse, curFixed, aggP.N())
	}

	// Unwind: the coarsest level's membership is already final (it was just
	// built/optimised); project it back down through every level above the
	// original, finishing at p itself.
	for i := len(stack) - 1; i >= 0; i-- {
		frame := stack[i]
		if err := frame.p.FromCoarsePartition(cur, frame.fineToCoarse); err != nil {
			return total, improved, err
		}
		cur = frame.p
	}

	return total, improved, nil
}

// propagateFixed carries fixed-vertex pins from one level onto the next
// coarser level's aggregate vertices: an aggregate vertex is fixed if any
// fine vertex it absorbed was fixed, so a fixed vertex's community can
// never be merged away by a move at a coarser level.
func propagateFixed(fineToCoarse []int, curFixed []bool, aggN int) []bool {
	if curFixed == nil {
		return nil
	}
	out := make([]bool, aggN)
	for v, fixed := range curFixed {
		if fixed {
			out[fineToCoarse[v]] = true
		}
	}
	return out
}

// cloneSingleton builds a fresh singleton partition of the same variant,
// resolution, and graph as p — the refinement partition R of SPEC_FULL.md
// §4.4, which starts from singletons regardless of p's current membership.
func cloneSingleton(p *partition.Partition) (*partition.Partition, error) {
	return partition.NewPartition(p.Graph(), p.Variant(), resolutionOpts(p)...)
}

// resolutionOpts carries a resolution-supporting partition's current gamma
// forward into a freshly constructed sibling partition.
func resolutionOpts(p *partition.Partition) []partition.Option {
	gamma, err := p.ResolutionParameter()
	if err != nil {
		return nil
	}
	return []partition.Option{partition.WithResolution(gamma)}
}

// superRepresentatives returns, for every refinement-aggregate vertex, the
// id of the P-community (in super) that all of its members share — the
// constrained-move invariant guarantees this is well defined.
func superRepresentatives(refine, super *partition.Partition, fineToCoarse []int, aggN int) ([]int, error) {
	rep := make([]int, aggN)
	for i := range rep {
		rep[i] = -1
	}
	for v := 0; v < refine.N(); v++ {
		agg := fineToCoarse[v]
		if rep[agg] == -1 {
			rep[agg] = super.MembershipOf(v)
		}
	}
	return rep, nil
}

// seedFromSuper merges aggregate vertices that share a P-community
// representative into the same aggregate community, so the coarser
// partition's optimisation pass starts from P's structure rather than from
// singletons, per SPEC_FULL.md §4.4.
func seedFromSuper(aggP *partition.Partition, repSuper []int) error {
	firstWithRep := make(map[int]int, len(repSuper))
	for v, rep := range repSuper {
		if owner, ok := firstWithRep[rep]; ok {
			if err := aggP.MoveNode(v, aggP.MembershipOf(owner)); err != nil {
				return err
			}
		} else {
			firstWithRep[rep] = v
		}
	}
	return nil
}

// runRoutine dispatches to MoveNodes or MergeNodes per the requested
// Routine, threading through the shared RNG stream and configured policy.
func (o *Optimiser) runRoutine(r Routine, p *partition.Partition, policy localmove.ConsiderPolicy, isFixed []bool) (float64, error) {
	opts := o.localmoveOpts(policy, isFixed)
	switch r {
	case MoveNodesRoutine:
		return localmove.MoveNodes(p, o.rng, opts...)
	case MergeNodesRoutine:
		return localmove.MergeNodes(p, o.rng, opts...)
	default:
		return 0, ErrUnknownRoutine
	}
}

// runRoutineConstrained is runRoutine's constrained-move counterpart, used
// for the refinement pass.
func (o *Optimiser) runRoutineConstrained(r Routine, p, constrainedTo *partition.Partition, policy localmove.ConsiderPolicy, isFixed []bool) (float64, error) {
	opts := o.localmoveOpts(policy, isFixed)
	switch r {
	case MoveNodesRoutine:
		return localmove.MoveNodesConstrained(p, constrainedTo, o.rng, opts...)
	case MergeNodesRoutine:
		return localmove.MergeNodesConstrained(p, constrainedTo, o.rng, opts...)
	default:
		return 0, ErrUnknownRoutine
	}
}

func (o *Optimiser) localmoveOpts(policy localmove.ConsiderPolicy, isFixed []bool) []localmove.Option {
	opts := []localmove.Option{
		localmove.WithConsiderPolicy(policy),
		localmove.WithConsiderEmptyCommunity(o.considerEmptyCommunity),
		localmove.WithMaxCommSize(o.maxCommSize),
	}
	if isFixed != nil {
		opts = append(opts, localmove.WithFixed(isFixed))
	}
	return opts
}

// MoveNodes exposes the local-move primitive directly, per SPEC_FULL.md
// §6's External Interfaces list.
func (o *Optimiser) MoveNodes(p *partition.Partition, isFixed []bool) (float64, error) {
	return localmove.MoveNodes(p, o.rng, o.localmoveOpts(o.considerComms, isFixed)...)
}

// MoveNodesConstrained exposes the constrained local-move primitive.
func (o *Optimiser) MoveNodesConstrained(p, constrainedTo *partition.Partition, isFixed []bool) (float64, error) {
	return localmove.MoveNodesConstrained(p, constrainedTo, o.rng, o.localmoveOpts(o.considerComms, isFixed)...)
}

// MergeNodes exposes the local-merge primitive directly.
func (o *Optimiser) MergeNodes(p *partition.Partition, isFixed []bool) (float64, error) {
	return localmove.MergeNodes(p, o.rng, o.localmoveOpts(o.refineConsiderComms, isFixed)...)
}

// MergeNodesConstrained exposes the constrained local-merge primitive.
func (o *Optimiser) MergeNodesConstrained(p, constrainedTo *partition.Partition, isFixed []bool) (float64, error) {
	return localmove.MergeNodesConstrained(p, constrainedTo, o.rng, o.localmoveOpts(o.refineConsiderComms, isFixed)...)
}
