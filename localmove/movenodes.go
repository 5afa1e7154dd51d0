// File: movenodes.go
// Role: MoveNodes/MoveNodesConstrained, the SPEC_FULL.md §4.2 queue-driven
// local-move routine.

package localmove

import (
	"math/rand"

	"github.com/katalvlaran/leiden/partition"
)

// MoveNodes runs the local-move routine to (local) convergence on p,
// returning the total accumulated diff. Accepts only strictly-positive
// diff_move results, breaking ties toward v's current community.
//
// Complexity: O((n + m) · iterations) amortized, per SPEC_FULL.md §5.
func MoveNodes(p *partition.Partition, rng *rand.Rand, opts ...Option) (float64, error) {
	return moveNodes(p, nil, rng, opts...)
}

// MoveNodesConstrained runs MoveNodes restricted so that no move crosses
// the boundaries of constrainedTo's communities (used by the refinement
// stage of optimiser.OptimisePartition).
func MoveNodesConstrained(p, constrainedTo *partition.Partition, rng *rand.Rand, opts ...Option) (float64, error) {
	if constrainedTo == nil {
		return 0, ErrNilConstraint
	}
	return moveNodes(p, constrainedTo, rng, opts...)
}

func moveNodes(p, constrainedTo *partition.Partition, rng *rand.Rand, opts ...Option) (float64, error) {
	if rng == nil {
		return 0, ErrNilRNG
	}
	n := p.N()
	cfg, err := newConfig(n, opts)
	if err != nil {
		return 0, err
	}

	var ct *constraintTracker
	if constrainedTo != nil {
		ct = newConstraintTracker(p, constrainedTo)
	}

	order := rng.Perm(n)
	queue := make([]int, 0, n)
	inQueue := make([]bool, n)
	for _, v := range order {
		if cfg.isFixed != nil && cfg.isFixed[v] {
			continue
		}
		queue = append(queue, v)
		inQueue[v] = true
	}

	var totalDiff float64
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		inQueue[v] = false

		cur := p.MembershipOf(v)
		sigma := p.Graph().NodeSize(v)
		best, bestDiff := cur, 0.0

		for _, c := range candidates(p, v, cfg.policy, rng, cfg.considerEmptyCommunity) {
			if c == cur {
				continue
			}
			if ct != nil && !ct.allowed(v, c) {
				continue
			}
			if cfg.maxCommSize > 0 {
				if sz, _ := p.Size(c); sz+sigma > cfg.maxCommSize {
					continue
				}
			}
			diff, err := p.DiffMove(v, c)
			if err != nil {
				return totalDiff, err
			}
			if diff > bestDiff {
				bestDiff, best = diff, c
			}
		}

		if best == cur {
			continue
		}
		if err := p.MoveNode(v, best); err != nil {
			return totalDiff, err
		}
		totalDiff += bestDiff
		if ct != nil {
			ct.recordMove(v, best)
		}
		enqueueNeighbors(p, v, cfg.isFixed, inQueue, &queue)
	}

	return totalDiff, nil
}

// enqueueNeighbors appends v's non-fixed neighbors that are not already
// queued.
func enqueueNeighbors(p *partition.Partition, v int, isFixed []bool, inQueue []bool, queue *[]int) {
	add := func(other int, _ float64) {
		if other == v {
			return
		}
		if isFixed != nil && isFixed[other] {
			return
		}
		if !inQueue[other] {
			*queue = append(*queue, other)
			inQueue[other] = true
		}
	}
	g := p.Graph()
	g.OutNeighbors(v, add)
	if g.Directed() {
		g.InNeighbors(v, add)
	}
}
