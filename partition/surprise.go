// File: surprise.go
// Role: the (asymptotic) Surprise quality function — how unlikely the
// observed concentration of internal weight is under a uniform null model.

package partition

// surpriseQuality implements Q = m·D(q ‖ ⟨q⟩), q = Σ_c m_c / m,
// ⟨q⟩ = Σ_c binom(S_c,2) / binom(N,2). No resolution parameter.
type surpriseQuality struct{}

func (q *surpriseQuality) name() string { return "surprise" }

func (q *surpriseQuality) acceptsWeight(w float64) error {
	if w < 0 {
		return ErrNegativeWeight
	}
	return nil
}

func (q *surpriseQuality) quality(p *Partition, _ *float64) float64 {
	m := p.g.TotalWeight()
	total := binom2(p.g.TotalNodeSize())
	if m == 0 || total == 0 {
		return 0
	}
	qObs := p.sumWIn / m
	qAvg := p.sumBinomSize / total
	return m * klDiv(qObs, qAvg)
}

func (q *surpriseQuality) diffMove(p *Partition, v, cNew int) float64 {
	m := p.g.TotalWeight()
	total := binom2(p.g.TotalNodeSize())
	if m == 0 || total == 0 {
		return 0
	}

	cOld := p.membership[v]
	toOld := p.internalWeightTo(cOld)
	toNew := p.internalWeightTo(cNew)
	sz := p.g.NodeSize(v)

	sOld, sNew := p.size[cOld], p.size[cNew]

	before := m * klDiv(p.sumWIn/m, p.sumBinomSize/total)

	sumWInAfter := p.sumWIn - toOld + toNew
	sumBinomAfter := p.sumBinomSize - binom2(sOld) - binom2(sNew) + binom2(sOld-sz) + binom2(sNew+sz)
	after := m * klDiv(sumWInAfter/m, sumBinomAfter/total)

	return after - before
}
