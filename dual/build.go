// File: build.go — constructs the dual graph of a mesh: one dual vertex
// per face, one directed dual arc per half-edge connecting the face it
// bounds to the face its twin bounds.
package dual

import "github.com/katalvlaran/topokit/mesh"

// WeightFunc assigns a crossing cost to a half-edge; nil means "unit cost
// per crossing" (BuildDualGraph's default).
type WeightFunc func(h mesh.HalfEdgeId) float64

// BuildDualGraph constructs the dual of m. A self-adjacency (a face
// crossing into itself, possible for a bridge-like edge bounded by the
// same face on both sides) is recorded like any other arc; callers doing
// shortest-path routing naturally never choose a positive-weight self-loop.
//
// Complexity: O(V+E) where V,E are the mesh's face and half-edge counts.
func BuildDualGraph(m *mesh.Mesh, weight WeightFunc) *Graph {
	if weight == nil {
		weight = func(mesh.HalfEdgeId) float64 { return 1 }
	}
	d := &Graph{Adj: make([][]Edge, m.FaceCount())}
	for h := 0; h < m.HalfEdgeCount(); h++ {
		hid := mesh.HalfEdgeId(h)
		from := m.Face[hid]
		to := m.Face[m.Twin[hid]]
		d.Adj[from] = append(d.Adj[from], Edge{ToFace: to, Via: hid, Weight: weight(hid)})
	}
	return d
}
