// Package mesh implements the "E" component: a half-edge mesh (DCEL) built
// from a planarity.RotationSystem, exposing face walking and the graph's
// dual adjacency for downstream layout and routing packages.
package mesh

import (
	"github.com/katalvlaran/topokit/topoerr"
	"github.com/katalvlaran/topokit/topograph"
)

// ErrBadRotation is re-exported from topoerr: returned when a supplied
// RotationSystem does not describe a valid embedding of the graph it is
// paired with (wrong incidence count, dangling edge reference, etc).
var ErrBadRotation = topoerr.ErrBadRotation

// HalfEdgeId indexes one directed half-edge of a Mesh. Mesh always holds
// exactly two half-edges per underlying graph edge (a twin pair).
type HalfEdgeId int

// Mesh is a doubly-connected edge list (DCEL): parallel arrays indexed by
// HalfEdgeId, plus the face decomposition they induce.
type Mesh struct {
	// Origin[h] is the vertex h departs from.
	Origin []topograph.VertexId
	// Twin[h] is the oppositely-directed half-edge sharing h's underlying
	// edge.
	Twin []HalfEdgeId
	// Next[h] is the next half-edge walking h's face boundary.
	Next []HalfEdgeId
	// Prev[h] is the inverse of Next.
	Prev []HalfEdgeId
	// Edge[h] is the underlying topograph edge id.
	Edge []topograph.EdgeId
	// Face[h] is the index into Faces of the face h bounds.
	Face []int

	// Faces[i] lists face i's boundary half-edges in Next order, starting
	// from an arbitrary half-edge of that face.
	Faces [][]HalfEdgeId
	// OuterFace indexes the face selected as unbounded (see selectOuterFace).
	OuterFace int

	// posInRotation[h] is h's index within its origin vertex's rotation;
	// unexported, used only inside this package.
	posInRotation []int
	heByPos       [][]HalfEdgeId
}

// VertexCount reports the number of vertices the mesh was built over.
func (m *Mesh) VertexCount() int { return len(m.heByPos) }

// HalfEdgeCount reports the total half-edge count (always 2*edges).
func (m *Mesh) HalfEdgeCount() int { return len(m.Origin) }

// FaceCount reports the number of faces (including the outer face).
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// OutgoingHalfEdges returns v's half-edges in rotation order.
func (m *Mesh) OutgoingHalfEdges(v topograph.VertexId) []HalfEdgeId {
	return m.heByPos[v]
}

// Target returns the vertex h points to.
func (m *Mesh) Target(h HalfEdgeId) topograph.VertexId {
	return m.Origin[m.Twin[h]]
}
