// File: stats.go
// Role: the read-only statistics surface named in SPEC_FULL.md §6:
// WIn/WInFrom/WInTo, TotalWeightInAllComms, TotalPossibleEdgesInAllComms,
// plus Quality.

package partition

// WIn returns w_in(c): the weight of edges with both endpoints in c.
func (p *Partition) WIn(c int) (float64, error) {
	if c < 0 || c >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	return p.wIn[c], nil
}

// WInFrom returns the total weighted out-degree of c's members (K_c^out
// for directed graphs; equals total strength for undirected graphs).
func (p *Partition) WInFrom(c int) (float64, error) {
	if c < 0 || c >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	return p.strOut[c], nil
}

// WInTo returns the total weighted in-degree of c's members (K_c^in for
// directed graphs; equals total strength for undirected graphs).
func (p *Partition) WInTo(c int) (float64, error) {
	if c < 0 || c >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	return p.strIn[c], nil
}

// Size returns size(c): Σ node_size over c's members.
func (p *Partition) Size(c int) (int, error) {
	if c < 0 || c >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	return p.size[c], nil
}

// Count returns count(c): the number of vertices assigned to c.
func (p *Partition) Count(c int) (int, error) {
	if c < 0 || c >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	return p.count[c], nil
}

// TotalWeightInAllComms returns Σ_c w_in(c).
func (p *Partition) TotalWeightInAllComms() float64 { return p.sumWIn }

// TotalPossibleEdgesInAllComms returns Σ_c binom(size(c),2).
func (p *Partition) TotalPossibleEdgesInAllComms() float64 { return p.sumBinomSize }

// Quality returns the variant's objective for the current partition. If
// overrideResolution is provided, it is used instead of the partition's
// stored resolution parameter for variants that support one (required for
// the profile driver's monotonicity repair, per SPEC_FULL.md §9) and
// ignored otherwise.
func (p *Partition) Quality(overrideResolution ...float64) float64 {
	if len(overrideResolution) > 0 {
		g := overrideResolution[0]
		return p.q.quality(p, &g)
	}
	return p.q.quality(p, nil)
}

// ResolutionParameter returns the current resolution parameter, for
// variants that support one.
func (p *Partition) ResolutionParameter() (float64, error) {
	rv, ok := p.q.(resolutionVariant)
	if !ok {
		return 0, ErrResolutionNotSupported
	}
	return rv.getResolution(), nil
}

// SetResolutionParameter updates the resolution parameter in place; the
// membership and all community statistics are unaffected (resolution only
// changes how Quality/DiffMove weigh the null model).
func (p *Partition) SetResolutionParameter(gamma float64) error {
	rv, ok := p.q.(resolutionVariant)
	if !ok {
		return ErrResolutionNotSupported
	}
	rv.setResolution(gamma)
	return nil
}

// BisectValue returns Σ_c w_in(c), used by an external resolution-profile
// driver to detect plateaus (SPEC_FULL.md §9's bisect_value).
func (p *Partition) BisectValue() (float64, error) {
	rv, ok := p.q.(resolutionVariant)
	if !ok {
		return 0, ErrResolutionNotSupported
	}
	return rv.bisectValue(p), nil
}
