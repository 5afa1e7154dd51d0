// File: significance.go
// Role: the Significance quality function. Only well-defined for
// unweighted (or binary-counted) edges, per SPEC_FULL.md §4.1.

package partition

// significanceQuality implements Q = Σ_c binom(S_c,2)·D(p_c ‖ p),
// p_c = m_c/binom(S_c,2), p = m/binom(N,2). No resolution parameter.
type significanceQuality struct{}

func (q *significanceQuality) name() string { return "significance" }

// acceptsWeight rejects anything but a binary edge weight — Significance's
// p_c/p model assumes edges are present-or-absent, not magnitude-weighted.
func (q *significanceQuality) acceptsWeight(w float64) error {
	if w != 0 && w != 1 {
		return ErrWeightedGraph
	}
	return nil
}

func (q *significanceQuality) globalP(p *Partition) float64 {
	total := binom2(p.g.TotalNodeSize())
	if total == 0 {
		return 0
	}
	return p.g.TotalWeight() / total
}

func (q *significanceQuality) term(mc float64, sc int, globalP float64) float64 {
	b := binom2(sc)
	if b == 0 {
		return 0
	}
	return b * klDiv(mc/b, globalP)
}

func (q *significanceQuality) quality(p *Partition, _ *float64) float64 {
	globalP := q.globalP(p)
	if globalP == 0 {
		return 0
	}
	var sum float64
	n := p.N()
	for c := 0; c < n; c++ {
		if p.count[c] == 0 {
			continue
		}
		sum += q.term(p.wIn[c], p.size[c], globalP)
	}
	return sum
}

func (q *significanceQuality) diffMove(p *Partition, v, cNew int) float64 {
	globalP := q.globalP(p)
	if globalP == 0 {
		return 0
	}

	cOld := p.membership[v]
	toOld := p.internalWeightTo(cOld)
	toNew := p.internalWeightTo(cNew)
	sz := p.g.NodeSize(v)

	sOld, sNew := p.size[cOld], p.size[cNew]
	mOld, mNew := p.wIn[cOld], p.wIn[cNew]

	before := q.term(mOld, sOld, globalP) + q.term(mNew, sNew, globalP)
	after := q.term(mOld-toOld, sOld-sz, globalP) + q.term(mNew+toNew, sNew+sz, globalP)
	return after - before
}
