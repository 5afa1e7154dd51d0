// File: moves.go
// Role: the sparse neighbor-community scratch cache and the two mutators
// that keep bookkeeping incrementally correct: DiffMove (read-only) and
// MoveNode (the only thing allowed to touch per-community statistics).

package partition

// beginMove populates the scratch cache for vertex v against the current
// membership, clearing whatever it held for a previous vertex (scratchOut
// in O(|touched|), scratchIn in O(previous vertex's in-degree)).
// scratchOut[c] is the weight of out-edges (or, for undirected graphs, all
// incident edges) from v to community c; scratchIn[c] is the weight of
// in-edges from community c to v (directed graphs only — undirected graphs
// leave scratchIn empty and read scratchOut instead).
//
// Complexity: O(deg(v)).
func (p *Partition) beginMove(v int) {
	for _, c := range p.touched {
		delete(p.scratchOut, c)
	}
	if p.g.Directed() {
		for c := range p.scratchIn {
			delete(p.scratchIn, c)
		}
	}
	p.touched = p.touched[:0]
	p.scratchVertex = v
	p.scratchCommunity = p.membership[v]
	p.selfLoop = 0

	p.g.OutNeighbors(v, func(other int, w float64) {
		if other == v {
			p.selfLoop += w
		}
		c := p.membership[other]
		if _, ok := p.scratchOut[c]; !ok {
			p.touched = append(p.touched, c)
		}
		p.scratchOut[c] += w
	})

	if p.g.Directed() {
		p.g.InNeighbors(v, func(other int, w float64) {
			c := p.membership[other]
			p.scratchIn[c] += w
		})
	}
}

// weightToComm returns the weight of edges from v to community c
// (out-direction; for undirected graphs this is every incident edge
// weight toward c). Requires beginMove(v) to have been called for this v.
func (p *Partition) weightToComm(c int) float64 {
	return p.scratchOut[c]
}

// weightFromComm returns the weight of edges from community c to v
// (in-direction). For undirected graphs this equals weightToComm.
func (p *Partition) weightFromComm(c int) float64 {
	if !p.g.Directed() {
		return p.scratchOut[c]
	}
	return p.scratchIn[c]
}

// internalWeightTo returns the weight that would newly become internal to
// community c if v moved into c: the sum of v's edge weight toward c's
// current members, plus v's own self-loop (if any), counted exactly once
// regardless of direction. The self-loop is always internal to whatever
// community v belongs to, so it is folded into scratchOut[c]'s own bucket
// by beginMove when c is v's current community, and added explicitly here
// for every other c (the community v would newly join).
func (p *Partition) internalWeightTo(c int) float64 {
	if !p.g.Directed() {
		d := p.scratchOut[c]
		if c != p.scratchCommunity {
			d += p.selfLoop
		}
		return d
	}
	d := p.scratchOut[c] + p.scratchIn[c]
	if c == p.scratchCommunity {
		d -= p.selfLoop
	} else {
		d += p.selfLoop
	}
	return d
}

// WeightToComm returns the total weight of edges from v to community c.
// Safe to call at any time; recomputes v's neighbor cache if necessary.
//
// Complexity: O(deg(v)) worst case, O(1) if v's cache is already current.
func (p *Partition) WeightToComm(v, c int) (float64, error) {
	if v < 0 || v >= p.N() {
		return 0, ErrVertexOutOfRange
	}
	if c < 0 || c >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	if p.scratchVertex != v {
		p.beginMove(v)
	}
	return p.weightToComm(c), nil
}

// WeightFromComm returns the total weight of edges from community c to v.
//
// Complexity: O(deg(v)) worst case, O(1) if v's cache is already current.
func (p *Partition) WeightFromComm(v, c int) (float64, error) {
	if v < 0 || v >= p.N() {
		return 0, ErrVertexOutOfRange
	}
	if c < 0 || c >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	if p.scratchVertex != v {
		p.beginMove(v)
	}
	return p.weightFromComm(c), nil
}

// NeighborCommunities returns the distinct communities v currently has an
// edge toward (its own community included only if v has a self-loop or an
// intra-community edge), used by localmove's ALL_NEIGH_COMMS policy.
//
// Complexity: O(deg(v)).
func (p *Partition) NeighborCommunities(v int) []int {
	p.beginMove(v)
	out := make([]int, len(p.touched))
	copy(out, p.touched)
	return out
}

// DiffMove computes quality(after moving v to cNew) - quality(before),
// per the variant's closed-form diffMove. Returns 0 if cNew equals v's
// current community.
//
// Complexity: O(deg(v) + affected communities).
func (p *Partition) DiffMove(v, cNew int) (float64, error) {
	if v < 0 || v >= p.N() {
		return 0, ErrVertexOutOfRange
	}
	if cNew < 0 || cNew >= p.N() {
		return 0, ErrCommunityOutOfRange
	}
	if cNew == p.membership[v] {
		return 0, nil
	}
	if p.scratchVertex != v {
		p.beginMove(v)
	}
	return p.q.diffMove(p, v, cNew), nil
}

// MoveNode moves v from its current community into cNew, updating every
// per-community statistic. A no-op if cNew already equals v's community.
//
// Complexity: O(deg(v)).
func (p *Partition) MoveNode(v, cNew int) error {
	if v < 0 || v >= p.N() {
		return ErrVertexOutOfRange
	}
	if cNew < 0 || cNew >= p.N() {
		return ErrCommunityOutOfRange
	}
	cOld := p.membership[v]
	if cOld == cNew {
		return nil
	}
	if p.scratchVertex != v {
		p.beginMove(v)
	}

	sz := p.g.NodeSize(v)
	outS := p.g.OutStrength(v)

	toOld := p.internalWeightTo(cOld)
	toNew := p.internalWeightTo(cNew)

	p.sumBinomSize -= binom2(p.size[cOld]) + binom2(p.size[cNew])
	p.wIn[cOld] -= toOld
	p.wIn[cNew] += toNew
	p.sumWIn += toNew - toOld

	p.size[cOld] -= sz
	p.size[cNew] += sz
	p.count[cOld]--
	p.count[cNew]++
	p.strOut[cOld] -= outS
	p.strOut[cNew] += outS
	if p.g.Directed() {
		inS := p.g.InStrength(v)
		p.strIn[cOld] -= inS
		p.strIn[cNew] += inS
	}
	p.sumBinomSize += binom2(p.size[cOld]) + binom2(p.size[cNew])

	if p.count[cOld] == 0 {
		p.numCommunities--
		if !p.inFreeList[cOld] {
			p.freeComms = append(p.freeComms, cOld)
			p.inFreeList[cOld] = true
		}
	}
	if p.count[cNew] == 1 {
		p.numCommunities++
	}
	if p.inFreeList[cNew] {
		p.inFreeList[cNew] = false
		p.removeFromFreeList(cNew)
	}

	p.membership[v] = cNew
	// v's self-loop still sits in the cache bucket of cOld; invalidate the
	// cache so the next query for v recomputes it against the new membership.
	p.scratchVertex = -1

	return nil
}

// removeFromFreeList deletes c from the free-community stack. O(K) worst
// case; called only when a candidate empty community gets claimed, which
// is rare relative to the O(deg(v)) cost of the move itself.
func (p *Partition) removeFromFreeList(c int) {
	for i, fc := range p.freeComms {
		if fc == c {
			p.freeComms[i] = p.freeComms[len(p.freeComms)-1]
			p.freeComms = p.freeComms[:len(p.freeComms)-1]
			return
		}
	}
}

// EmptyCommunity returns a currently-empty community id and true, or
// (-1, false) if every community in [0,n) is occupied (impossible while
// n > 0, since count(c) sums to n over at most n communities, but checked
// defensively for n == 0).
func (p *Partition) EmptyCommunity() (int, bool) {
	if len(p.freeComms) == 0 {
		return -1, false
	}
	return p.freeComms[len(p.freeComms)-1], true
}
