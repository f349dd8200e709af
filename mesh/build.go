// File: build.go — constructs a Mesh from a graph and a rotation system by
// the standard combinatorial-map rule: the half-edge following (u -> v) in
// a face boundary is the one leaving v positioned immediately after (v's
// copy of) the arriving edge in v's own rotation.
package mesh

import (
	"fmt"

	"github.com/katalvlaran/topokit/planarity"
	"github.com/katalvlaran/topokit/topograph"
)

// BuildHalfEdgeMesh builds a Mesh for g using the given rotation system,
// which must assign every vertex a rotation whose edge multiset matches
// g's own adjacency exactly (same edges, same multiplicity); any mismatch,
// including a self-loop or parallel edge appearing a different number of
// times than in g, fails with ErrBadRotation.
//
// Complexity: O(V+E).
func BuildHalfEdgeMesh(g *topograph.Graph, rot *planarity.RotationSystem) (*Mesh, error) {
	n := g.VertexCount()
	if len(rot.Rotation) != n {
		return nil, fmt.Errorf("mesh: BuildHalfEdgeMesh: rotation has %d vertices, graph has %d: %w", len(rot.Rotation), n, ErrBadRotation)
	}

	m := &Mesh{
		heByPos: make([][]HalfEdgeId, n),
	}

	edgeHalfEdges := make(map[topograph.EdgeId][]HalfEdgeId, g.EdgeCount())

	for v := 0; v < n; v++ {
		refs := rot.Rotation[v]
		if len(refs) != g.Degree(topograph.VertexId(v)) {
			return nil, fmt.Errorf("mesh: BuildHalfEdgeMesh: vertex %d has rotation degree %d, graph degree %d: %w", v, len(refs), g.Degree(topograph.VertexId(v)), ErrBadRotation)
		}
		m.heByPos[v] = make([]HalfEdgeId, len(refs))
		want := make(map[[2]int]int, len(refs))
		for _, inc := range g.Adjacency(topograph.VertexId(v)) {
			want[[2]int{int(inc.Edge), int(inc.To)}]++
		}
		for i, ref := range refs {
			k := [2]int{int(ref.Edge), int(ref.To)}
			if want[k] == 0 {
				return nil, fmt.Errorf("mesh: BuildHalfEdgeMesh: vertex %d rotation entry %d (edge %d to %d) does not match its adjacency: %w", v, i, ref.Edge, ref.To, ErrBadRotation)
			}
			want[k]--
			h := HalfEdgeId(len(m.Origin))
			m.Origin = append(m.Origin, topograph.VertexId(v))
			m.Edge = append(m.Edge, ref.Edge)
			m.Twin = append(m.Twin, -1)
			m.Next = append(m.Next, -1)
			m.Prev = append(m.Prev, -1)
			m.posInRotation = append(m.posInRotation, i)
			m.heByPos[v][i] = h
			edgeHalfEdges[ref.Edge] = append(edgeHalfEdges[ref.Edge], h)
		}
	}

	if len(edgeHalfEdges) != g.EdgeCount() {
		return nil, fmt.Errorf("mesh: BuildHalfEdgeMesh: rotation references %d distinct edges, graph has %d: %w", len(edgeHalfEdges), g.EdgeCount(), ErrBadRotation)
	}
	for e, ids := range edgeHalfEdges {
		if len(ids) != 2 {
			return nil, fmt.Errorf("mesh: BuildHalfEdgeMesh: edge %d appears %d times across rotations, want 2: %w", e, len(ids), ErrBadRotation)
		}
		m.Twin[ids[0]] = ids[1]
		m.Twin[ids[1]] = ids[0]
	}

	for h := range m.Origin {
		twin := m.Twin[h]
		w := m.Origin[twin]
		pos := m.posInRotation[twin]
		nextPos := (pos + 1) % len(m.heByPos[w])
		m.Next[h] = m.heByPos[w][nextPos]
	}
	for h, next := range m.Next {
		m.Prev[next] = HalfEdgeId(h)
	}

	m.buildFaces()
	m.selectOuterFace()

	return m, nil
}

// buildFaces walks every Next-cycle exactly once, assigning Face[] and
// populating Faces.
func (m *Mesh) buildFaces() {
	m.Face = make([]int, len(m.Origin))
	for i := range m.Face {
		m.Face[i] = -1
	}
	for h := range m.Origin {
		if m.Face[h] != -1 {
			continue
		}
		faceIdx := len(m.Faces)
		var boundary []HalfEdgeId
		cur := HalfEdgeId(h)
		for {
			m.Face[cur] = faceIdx
			boundary = append(boundary, cur)
			cur = m.Next[cur]
			if cur == HalfEdgeId(h) {
				break
			}
		}
		m.Faces = append(m.Faces, boundary)
	}
}

// selectOuterFace picks the face with the most boundary half-edges as the
// unbounded face. This is a documented heuristic (valid for the connected,
// reasonably convex layouts this kernel targets) rather than a geometric
// test, since no coordinates exist yet at this stage of the pipeline.
func (m *Mesh) selectOuterFace() {
	best, bestLen := 0, -1
	for i, boundary := range m.Faces {
		if len(boundary) > bestLen {
			best, bestLen = i, len(boundary)
		}
	}
	m.OuterFace = best
}

// WalkFace returns the boundary vertex sequence of face i, in Next order.
func (m *Mesh) WalkFace(i int) []topograph.VertexId {
	boundary := m.Faces[i]
	vs := make([]topograph.VertexId, len(boundary))
	for j, h := range boundary {
		vs[j] = m.Origin[h]
	}
	return vs
}
