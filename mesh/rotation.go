// File: rotation.go — rotationFromAdjacency builds a RotationSystem
// directly from a graph's own builder-insertion adjacency order, for
// callers that already know that order is planar-consistent (e.g. a grid
// or cycle built by the builder package) and want to skip re-deriving an
// embedding via planarity.TestPlanarity.
package mesh

import (
	"github.com/katalvlaran/topokit/planarity"
	"github.com/katalvlaran/topokit/topograph"
)

// RotationFromAdjacency copies g's own adjacency order into a
// planarity.RotationSystem verbatim. The caller is responsible for knowing
// this order is a valid planar embedding; BuildHalfEdgeMesh will reject it
// with ErrBadRotation if it is not even a valid rotation (wrong
// incidence counts), but will not detect a valid-but-nonplanar rotation.
func RotationFromAdjacency(g *topograph.Graph) *planarity.RotationSystem {
	n := g.VertexCount()
	rs := &planarity.RotationSystem{Rotation: make([][]planarity.RotationRef, n)}
	for v := 0; v < n; v++ {
		adj := g.Adjacency(topograph.VertexId(v))
		refs := make([]planarity.RotationRef, len(adj))
		for i, inc := range adj {
			refs[i] = planarity.RotationRef{Edge: inc.Edge, To: inc.To}
		}
		rs.Rotation[v] = refs
	}
	return rs
}
