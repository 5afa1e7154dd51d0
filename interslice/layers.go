// File: layers.go
// Role: BuildLayers, the disjoint-union slice-to-layer conversion of
// SPEC_FULL.md §4.7, grounded on leidenalg's slices_to_layers/
// time_slices_to_layers (original_source/src/leidenalg/functions.py):
// each slice becomes one layer defined over the full disjoint-union
// vertex space, and a chain-coupled interslice layer links same-identity
// vertices across adjacent slices.

package interslice

import "github.com/katalvlaran/leiden/graph"

// BuildLayers disjoint-unions slices into layers sharing one global vertex
// space (globalN = Σ slice vertex counts): layers[i] carries slice i's
// edges at their offset-shifted indices; the vertices that belong to slice
// i keep their NodeSize from slice i, all others get 0 (a ghost).
// sliceVertexID[i][v] identifies local vertex v of slice i; two vertices
// in temporally adjacent slices (i, i+1) sharing an id are linked in the
// returned coupling graph with weight interWeight, NodeSize=0 throughout.
//
// Complexity: O(Σ(n_i + m_i)).
func BuildLayers(slices []*graph.Graph, sliceVertexID [][]int, interWeight float64) ([]*graph.Graph, *graph.Graph, error) {
	if len(slices) == 0 {
		return nil, nil, ErrNoSlices
	}
	if len(sliceVertexID) != len(slices) {
		return nil, nil, ErrSliceVertexIDMismatch
	}

	offsets := make([]int, len(slices))
	globalN := 0
	for i, s := range slices {
		if len(sliceVertexID[i]) != s.N() {
			return nil, nil, ErrSliceVertexIDMismatch
		}
		offsets[i] = globalN
		globalN += s.N()
	}

	idToLocal := make([]map[int]int, len(slices))
	for i, ids := range sliceVertexID {
		m := make(map[int]int, len(ids))
		for v, id := range ids {
			if _, dup := m[id]; dup {
				return nil, nil, ErrDuplicateVertexID
			}
			m[id] = v
		}
		idToLocal[i] = m
	}

	layers := make([]*graph.Graph, len(slices))
	for i, s := range slices {
		sizes := make([]int, globalN)
		for v := 0; v < s.N(); v++ {
			sizes[offsets[i]+v] = s.NodeSize(v)
		}
		layer, err := graph.NewGraph(globalN, s.Directed(), graph.WithNodeSizes(sizes))
		if err != nil {
			return nil, nil, err
		}
		for _, e := range s.Edges() {
			if err := layer.AddEdge(offsets[i]+e.From, offsets[i]+e.To, e.Weight); err != nil {
				return nil, nil, err
			}
		}
		layers[i] = layer
	}

	coupling, err := graph.NewGraph(globalN, false, graph.WithNodeSizes(make([]int, globalN)))
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < len(slices)-1; i++ {
		next := i + 1
		for v, id := range sliceVertexID[i] {
			u, ok := idToLocal[next][id]
			if !ok {
				continue
			}
			if err := coupling.AddEdge(offsets[i]+v, offsets[next]+u, interWeight); err != nil {
				return nil, nil, err
			}
		}
	}

	return layers, coupling, nil
}

// ProjectMembership extracts slice i's local membership vector from a
// global membership vector produced by optimising the layers BuildLayers
// returned (every layer shares one membership vector, so any of them
// suffices as the source).
func ProjectMembership(globalMembership []int, slices []*graph.Graph, sliceIndex int) []int {
	offset := 0
	for i := 0; i < sliceIndex; i++ {
		offset += slices[i].N()
	}
	n := slices[sliceIndex].N()
	out := make([]int, n)
	copy(out, globalMembership[offset:offset+n])
	return out
}
