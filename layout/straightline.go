// File: straightline.go — planarStraightLine: pin the outer face to a
// regular polygon, relax interior vertices to the average of their
// (triangulation-augmented) neighbors, and emit straight edges.
package layout

import (
	"math"
	"sort"

	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/topograph"
)

const (
	maxRelaxIterations = 500
	relaxConvergenceL1 = 1e-4
	coordScale         = 10.0
)

// PlanarStraightLine lays out a planar graph from its half-edge mesh via
// Tutte-style barycentric relaxation.
//
// Complexity: O(iterations * (V+E)).
func PlanarStraightLine(g *topograph.Graph, m *mesh.Mesh) (*Artifact, error) {
	boundary := dedupWalk(m.WalkFace(m.OuterFace))
	boundarySet := make(map[topograph.VertexId]bool, len(boundary))
	pos := make(map[topograph.VertexId]Point, g.VertexCount())

	n := len(boundary)
	radius := float64(n)
	if radius < 1 {
		radius = 1
	}
	for i, v := range boundary {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos[v] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		boundarySet[v] = true
	}
	for v := 0; v < g.VertexCount(); v++ {
		vid := topograph.VertexId(v)
		if !boundarySet[vid] {
			pos[vid] = Point{X: 0, Y: 0}
		}
	}

	adj := augmentedAdjacency(g, m)

	for iter := 0; iter < maxRelaxIterations; iter++ {
		next := make(map[topograph.VertexId]Point, len(pos))
		maxDelta := 0.0
		for v := 0; v < g.VertexCount(); v++ {
			vid := topograph.VertexId(v)
			if boundarySet[vid] {
				next[vid] = pos[vid]
				continue
			}
			nbrs := adj[vid]
			if len(nbrs) == 0 {
				next[vid] = pos[vid]
				continue
			}
			var sx, sy float64
			for _, w := range nbrs {
				sx += pos[w].X
				sy += pos[w].Y
			}
			np := Point{X: sx / float64(len(nbrs)), Y: sy / float64(len(nbrs))}
			delta := math.Abs(np.X-pos[vid].X) + math.Abs(np.Y-pos[vid].Y)
			if delta > maxDelta {
				maxDelta = delta
			}
			next[vid] = np
		}
		pos = next
		if maxDelta < relaxConvergenceL1 {
			break
		}
	}

	for v, p := range pos {
		p.X = math.Round(p.X * coordScale)
		p.Y = math.Round(p.Y * coordScale)
		p.Clamp()
		pos[v] = p
	}

	art := &Artifact{Mode: StraightLine, Positions: pos}
	for _, rec := range g.Edges() {
		art.EdgeRoutes = append(art.EdgeRoutes, EdgeRoute{
			Edge:     rec.ID,
			U:        rec.U,
			V:        rec.V,
			Polyline: []Point{pos[rec.U], pos[rec.V]},
		})
	}
	art.Crossings = countCrossings(art.EdgeRoutes)
	art.BBox = computeBBox(pos)

	return art, nil
}

func dedupWalk(vs []topograph.VertexId) []topograph.VertexId {
	out := make([]topograph.VertexId, 0, len(vs))
	for i, v := range vs {
		if i == 0 || v != vs[i-1] {
			out = append(out, v)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// augmentedAdjacency builds the relaxation neighbor graph: real graph
// adjacency plus fan-triangulation diagonals added for every interior
// face, for averaging purposes only (these are not emitted as edges).
func augmentedAdjacency(g *topograph.Graph, m *mesh.Mesh) map[topograph.VertexId][]topograph.VertexId {
	adj := make(map[topograph.VertexId][]topograph.VertexId, g.VertexCount())
	for _, rec := range g.Edges() {
		adj[rec.U] = append(adj[rec.U], rec.V)
		adj[rec.V] = append(adj[rec.V], rec.U)
	}

	for f := 0; f < m.FaceCount(); f++ {
		if f == m.OuterFace {
			continue
		}
		verts := dedupWalk(m.WalkFace(f))
		if len(verts) < 4 {
			continue
		}
		first := verts[0]
		for i := 2; i <= len(verts)-2; i++ {
			adj[first] = append(adj[first], verts[i])
			adj[verts[i]] = append(adj[verts[i]], first)
		}
	}
	return adj
}

func countCrossings(routes []EdgeRoute) int {
	count := 0
	for i := 0; i < len(routes); i++ {
		for j := i + 1; j < len(routes); j++ {
			a, b := routes[i], routes[j]
			if sharesEndpoint(a, b) {
				continue
			}
			if segmentsIntersect(a.Polyline[0], a.Polyline[len(a.Polyline)-1], b.Polyline[0], b.Polyline[len(b.Polyline)-1]) {
				count++
			}
		}
	}
	return count
}

func sharesEndpoint(a, b EdgeRoute) bool {
	return a.U == b.U || a.U == b.V || a.V == b.U || a.V == b.V
}

func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := orient(p3, p4, p1)
	d2 := orient(p3, p4, p2)
	d3 := orient(p1, p2, p3)
	d4 := orient(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func computeBBox(pos map[topograph.VertexId]Point) BBox {
	if len(pos) == 0 {
		return BBox{}
	}
	ids := make([]topograph.VertexId, 0, len(pos))
	for v := range pos {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	first := pos[ids[0]]
	bb := BBox{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, v := range ids {
		p := pos[v]
		bb.MinX = math.Min(bb.MinX, p.X)
		bb.MinY = math.Min(bb.MinY, p.Y)
		bb.MaxX = math.Max(bb.MaxX, p.X)
		bb.MaxY = math.Max(bb.MaxY, p.Y)
	}
	return bb
}
