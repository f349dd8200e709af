// File: bipolar.go — the bipolar (st-) orientation induced by an
// st-numbering: every edge points from its lower-numbered endpoint to its
// higher-numbered one, giving an acyclic orientation with s as the unique
// source and t as the unique sink.
package order

import "github.com/katalvlaran/topokit/topograph"

// BipolarOrientation orients every edge of g from its lower-numbered
// endpoint to its higher-numbered one under num.
//
// Complexity: O(E).
func BipolarOrientation(g *topograph.Graph, num *Numbering) *Orientation {
	m := g.EdgeCount()
	o := &Orientation{From: make([]topograph.VertexId, m), To: make([]topograph.VertexId, m)}
	for _, rec := range g.Edges() {
		u, v := rec.U, rec.V
		if num.Number[u] <= num.Number[v] {
			o.From[rec.ID], o.To[rec.ID] = u, v
		} else {
			o.From[rec.ID], o.To[rec.ID] = v, u
		}
	}
	return o
}
