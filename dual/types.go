// Package dual implements the "U" component: the dual graph of a
// half-edge mesh (one vertex per face, one edge per primal edge crossed)
// and multi-source shortest-path routing over it, used by the
// planarization layout to decide which existing edges a reinserted edge
// must cross.
package dual

import (
	"github.com/katalvlaran/topokit/mesh"
)

// Edge is one dual-graph arc: crossing half-edge h takes you from the face
// it bounds into the face its twin bounds.
type Edge struct {
	ToFace int
	Via    mesh.HalfEdgeId
	Weight float64
}

// Graph is the dual of a mesh: Adj[f] lists the faces reachable by
// crossing one primal edge out of face f.
type Graph struct {
	Adj [][]Edge
}

// FaceCount reports the number of dual vertices (== mesh face count).
func (d *Graph) FaceCount() int { return len(d.Adj) }
