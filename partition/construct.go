// File: construct.go
// Role: NewPartition and the from-scratch statistics build used at
// construction, by SetMembership and by RenumberCommunities.

package partition

import "github.com/katalvlaran/leiden/graph"

// Option configures a Partition at construction time.
type Option func(*partitionConfig)

type partitionConfig struct {
	initialMembership []int
	resolution        float64
	resolutionSet     bool
}

// WithInitialMembership sets the starting membership vector. If omitted,
// the default singleton partition (membership[v] = v) is used.
func WithInitialMembership(membership []int) Option {
	return func(cfg *partitionConfig) { cfg.initialMembership = membership }
}

// WithResolution sets the resolution parameter for CPM/RBConfiguration/
// RBER. Ignored (never an error at this layer) for the other three
// variants — NewPartition rejects it for them explicitly so the mistake
// surfaces immediately instead of silently.
func WithResolution(gamma float64) Option {
	return func(cfg *partitionConfig) { cfg.resolution = gamma; cfg.resolutionSet = true }
}

// NewPartition builds a Partition of the given variant over g.
//
// Complexity: O(n + m).
func NewPartition(g *graph.Graph, variant Variant, opts ...Option) (*Partition, error) {
	cfg := &partitionConfig{resolution: 1.0}
	for _, opt := range opts {
		opt(cfg)
	}

	q, err := newQualityFunction(variant, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.resolutionSet {
		if _, ok := q.(resolutionVariant); !ok {
			return nil, ErrResolutionNotSupported
		}
	}

	n := g.N()
	membership := make([]int, n)
	if cfg.initialMembership != nil {
		if len(cfg.initialMembership) != n {
			return nil, ErrMembershipLength
		}
		copy(membership, cfg.initialMembership)
		for _, c := range membership {
			if c < 0 || c >= n {
				return nil, ErrCommunityOutOfRange
			}
		}
	} else {
		for v := range membership {
			membership[v] = v
		}
	}

	for _, e := range g.Edges() {
		if err := q.acceptsWeight(e.Weight); err != nil {
			return nil, err
		}
	}

	p := &Partition{
		g:          g,
		variant:    variant,
		q:          q,
		membership: membership,
		size:       make([]int, n),
		count:      make([]int, n),
		wIn:        make([]float64, n),
		strOut:     make([]float64, n),
		inFreeList: make([]bool, n),
		scratchOut:    make(map[int]float64, 8),
		scratchIn:     make(map[int]float64, 8),
		scratchVertex: -1,
	}
	if g.Directed() {
		p.strIn = make([]float64, n)
	} else {
		p.strIn = p.strOut
	}

	p.rebuildFromScratch()

	return p, nil
}

func newQualityFunction(variant Variant, cfg *partitionConfig) (qualityFunction, error) {
	switch variant {
	case Modularity:
		return &modularityQuality{}, nil
	case CPM:
		return &cpmQuality{resolution: cfg.resolution}, nil
	case RBConfiguration:
		return &rbConfigQuality{resolution: cfg.resolution}, nil
	case RBER:
		return &rberQuality{resolution: cfg.resolution}, nil
	case Surprise:
		return &surpriseQuality{}, nil
	case Significance:
		return &significanceQuality{}, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// rebuildFromScratch recomputes every per-community statistic from the
// current membership by a full O(n+m) pass. Used at construction, by
// SetMembership and RenumberCommunities, and after aggregation adds its
// edges. Nothing compares the incrementally maintained statistics against
// a recomputation, so no drift is ever detected or repaired by it.
func (p *Partition) rebuildFromScratch() {
	n := p.g.N()
	for c := 0; c < n; c++ {
		p.size[c] = 0
		p.count[c] = 0
		p.wIn[c] = 0
		p.strOut[c] = 0
		if p.g.Directed() {
			p.strIn[c] = 0
		}
	}

	for v := 0; v < n; v++ {
		c := p.membership[v]
		p.size[c] += p.g.NodeSize(v)
		p.count[c]++
		p.strOut[c] += p.g.OutStrength(v)
		if p.g.Directed() {
			p.strIn[c] += p.g.InStrength(v)
		}
	}

	p.sumWIn = 0
	p.sumBinomSize = 0
	for _, e := range p.g.Edges() {
		if p.membership[e.From] == p.membership[e.To] {
			p.wIn[p.membership[e.From]] += e.Weight
		}
	}
	p.numCommunities = 0
	p.freeComms = p.freeComms[:0]
	for c := 0; c < n; c++ {
		p.inFreeList[c] = false
		if p.count[c] > 0 {
			p.numCommunities++
		} else {
			p.freeComms = append(p.freeComms, c)
			p.inFreeList[c] = true
		}
		p.sumWIn += p.wIn[c]
		p.sumBinomSize += binom2(p.size[c])
	}

	p.scratchVertex = -1
	for k := range p.scratchOut {
		delete(p.scratchOut, k)
	}
	for k := range p.scratchIn {
		delete(p.scratchIn, k)
	}
	p.touched = p.touched[:0]
}

// binom2 computes binom(x,2) = x*(x-1)/2 for a non-negative integer size.
func binom2(x int) float64 {
	fx := float64(x)
	return fx * (fx - 1) / 2
}
