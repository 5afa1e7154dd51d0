// File: cpm.go
// Role: the Constant Potts Model quality function. Accepts signed weights;
// no normalization by total edge weight.

package partition

// cpmQuality implements Q = Σ_c [m_c - γ·binom(S_c,2)].
type cpmQuality struct {
	resolution float64
}

func (q *cpmQuality) name() string { return "CPM" }

// acceptsWeight accepts any finite weight, including negative (signed
// models are explicitly supported by CPM per SPEC_FULL.md §4.1).
func (q *cpmQuality) acceptsWeight(w float64) error { return nil }

func (q *cpmQuality) getResolution() float64      { return q.resolution }
func (q *cpmQuality) setResolution(gamma float64) { q.resolution = gamma }
func (q *cpmQuality) bisectValue(p *Partition) float64 { return p.sumWIn }

func (q *cpmQuality) quality(p *Partition, overrideResolution *float64) float64 {
	gamma := q.resolution
	if overrideResolution != nil {
		gamma = *overrideResolution
	}
	var sum float64
	n := p.N()
	for c := 0; c < n; c++ {
		if p.count[c] == 0 {
			continue
		}
		sum += p.wIn[c] - gamma*binom2(p.size[c])
	}
	return sum
}

func (q *cpmQuality) diffMove(p *Partition, v, cNew int) float64 {
	gamma := q.resolution

	cOld := p.membership[v]
	toOld := p.internalWeightTo(cOld)
	toNew := p.internalWeightTo(cNew)
	sz := p.g.NodeSize(v)

	sOld, sNew := p.size[cOld], p.size[cNew]
	mOld, mNew := p.wIn[cOld], p.wIn[cNew]

	before := (mOld - gamma*binom2(sOld)) + (mNew - gamma*binom2(sNew))
	after := (mOld - toOld - gamma*binom2(sOld-sz)) + (mNew + toNew - gamma*binom2(sNew+sz))
	return after - before
}
