// File: constraint.go
// Role: the move_nodes_constrained/merge_nodes_constrained invariant: a
// candidate community may only be considered if all of its current members
// (if any) share v's super-community in the constraining partition.

package localmove

import "github.com/katalvlaran/leiden/partition"

// constraintTracker remembers, for every community id currently in use,
// which super-community (in the constraining partition) occupies it. Since
// a constrained run never lets a community mix members from two different
// super-communities, a single representative per community id suffices.
type constraintTracker struct {
	super     *partition.Partition
	commSuper []int // commSuper[c] = super community id, or -1 if unset
}

func newConstraintTracker(p, super *partition.Partition) *constraintTracker {
	n := p.N()
	cs := make([]int, n)
	for i := range cs {
		cs[i] = -1
	}
	ct := &constraintTracker{super: super, commSuper: cs}
	for v := 0; v < n; v++ {
		c := p.MembershipOf(v)
		if cs[c] == -1 {
			cs[c] = super.MembershipOf(v)
		}
	}
	return ct
}

// allowed reports whether v may be considered for community c: either c
// has no recorded occupant yet, or its occupant shares v's super-community.
func (ct *constraintTracker) allowed(v, c int) bool {
	s := ct.commSuper[c]
	if s == -1 {
		return true
	}
	return s == ct.super.MembershipOf(v)
}

// recordMove updates bookkeeping after v has actually moved into cNew.
func (ct *constraintTracker) recordMove(v, cNew int) {
	ct.commSuper[cNew] = ct.super.MembershipOf(v)
}
