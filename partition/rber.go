// File: rber.go
// Role: the Reichardt-Bornholdt Erdős–Rényi quality function — CPM's
// null model replaced by a uniform density estimated from the whole graph.

package partition

// rberQuality implements Q = Σ_c [m_c - γ·p·binom(S_c,2)], p = 2m/binom(N,2).
type rberQuality struct {
	resolution float64
}

func (q *rberQuality) name() string { return "RBER" }

func (q *rberQuality) acceptsWeight(w float64) error {
	if w < 0 {
		return ErrNegativeWeight
	}
	return nil
}

func (q *rberQuality) getResolution() float64      { return q.resolution }
func (q *rberQuality) setResolution(gamma float64) { q.resolution = gamma }
func (q *rberQuality) bisectValue(p *Partition) float64 { return p.sumWIn }

// density returns p = 2m/binom(N,2), the global edge density used as the
// RBER null model's edge probability.
func (q *rberQuality) density(p *Partition) float64 {
	total := binom2(p.g.TotalNodeSize())
	if total == 0 {
		return 0
	}
	return 2 * p.g.TotalWeight() / total
}

func (q *rberQuality) quality(p *Partition, overrideResolution *float64) float64 {
	gamma := q.resolution
	if overrideResolution != nil {
		gamma = *overrideResolution
	}
	gp := gamma * q.density(p)
	var sum float64
	n := p.N()
	for c := 0; c < n; c++ {
		if p.count[c] == 0 {
			continue
		}
		sum += p.wIn[c] - gp*binom2(p.size[c])
	}
	return sum
}

func (q *rberQuality) diffMove(p *Partition, v, cNew int) float64 {
	gamma := q.resolution
	gp := gamma * q.density(p)

	cOld := p.membership[v]
	toOld := p.internalWeightTo(cOld)
	toNew := p.internalWeightTo(cNew)
	sz := p.g.NodeSize(v)

	sOld, sNew := p.size[cOld], p.size[cNew]
	mOld, mNew := p.wIn[cOld], p.wIn[cNew]

	before := (mOld - gp*binom2(sOld)) + (mNew - gp*binom2(sNew))
	after := (mOld - toOld - gp*binom2(sOld-sz)) + (mNew + toNew - gp*binom2(sNew+sz))
	return after - before
}
