// File: mergenodes.go
// Role: MergeNodes/MergeNodesConstrained, the SPEC_FULL.md §4.3 single-pass
// local-merge routine used by the refinement stage.

package localmove

import (
	"math/rand"

	"github.com/katalvlaran/leiden/partition"
)

// MergeNodes makes a single randomized pass over p's vertices, merging
// each singleton community into a neighboring one when strictly
// beneficial. Once a vertex has merged away, its vacated community cannot
// be reused as a merge target within the same call — a community that has
// already absorbed a member is never split apart.
func MergeNodes(p *partition.Partition, rng *rand.Rand, opts ...Option) (float64, error) {
	return mergeNodes(p, nil, rng, opts...)
}

// MergeNodesConstrained runs MergeNodes restricted so that no merge crosses
// the boundaries of constrainedTo's communities.
func MergeNodesConstrained(p, constrainedTo *partition.Partition, rng *rand.Rand, opts ...Option) (float64, error) {
	if constrainedTo == nil {
		return 0, ErrNilConstraint
	}
	return mergeNodes(p, constrainedTo, rng, opts...)
}

func mergeNodes(p, constrainedTo *partition.Partition, rng *rand.Rand, opts ...Option) (float64, error) {
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

	var totalDiff float64
	for _, v := range rng.Perm(n) {
		if cfg.isFixed != nil && cfg.isFixed[v] {
			continue
		}
		cur := p.MembershipOf(v)
		cnt, err := p.Count(cur)
		if err != nil {
			return totalDiff, err
		}
		if cnt != 1 {
			// v's community already absorbed (or was never) a singleton
			// this pass; it is locked for the remainder of the call.
			continue
		}

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
	}

	return totalDiff, nil
}
