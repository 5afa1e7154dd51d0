// File: candidate.go
// Role: candidate-community enumeration for each ConsiderPolicy.

package localmove

import (
	"math/rand"

	"github.com/katalvlaran/leiden/partition"
)

// candidates returns v's candidate target communities under policy,
// always including v's current community.
func candidates(p *partition.Partition, v int, policy ConsiderPolicy, rng *rand.Rand, considerEmpty bool) []int {
	cur := p.MembershipOf(v)

	switch policy {
	case AllNeighComms:
		neigh := p.NeighborCommunities(v)
		out := make([]int, 0, len(neigh)+2)
		out = appendUnique(out, cur)
		for _, c := range neigh {
			out = appendUnique(out, c)
		}
		if considerEmpty {
			if ec, ok := p.EmptyCommunity(); ok {
				out = appendUnique(out, ec)
			}
		}
		return out

	case AllComms:
		out := make([]int, 0, p.NumCommunities()+2)
		for c := 0; c < p.N(); c++ {
			if cnt, _ := p.Count(c); cnt > 0 {
				out = append(out, c)
			}
		}
		out = appendUnique(out, cur)
		if considerEmpty {
			if ec, ok := p.EmptyCommunity(); ok {
				out = appendUnique(out, ec)
			}
		}
		return out

	case RandNeighComm:
		neigh := p.NeighborCommunities(v)
		if len(neigh) == 0 {
			return []int{cur}
		}
		weights := make([]float64, len(neigh))
		var total float64
		for i, c := range neigh {
			w, _ := p.WeightToComm(v, c)
			weights[i] = w
			total += w
		}
		var chosen int
		if total <= 0 {
			chosen = neigh[rng.Intn(len(neigh))]
		} else {
			r := rng.Float64() * total
			var cum float64
			chosen = neigh[len(neigh)-1]
			for i, w := range weights {
				cum += w
				if r < cum {
					chosen = neigh[i]
					break
				}
			}
		}
		return appendUnique([]int{cur}, chosen)

	case RandComm:
		var occ []int
		for c := 0; c < p.N(); c++ {
			if cnt, _ := p.Count(c); cnt > 0 {
				occ = append(occ, c)
			}
		}
		if len(occ) == 0 {
			return []int{cur}
		}
		chosen := occ[rng.Intn(len(occ))]
		return appendUnique([]int{cur}, chosen)

	default:
		return []int{cur}
	}
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
