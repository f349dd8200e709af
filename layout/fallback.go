// File: fallback.go — RawRelaxation: the last-resort layout used when
// planarization itself fails. It has no mesh or face structure to pin a
// boundary against, so it damps a
// circle layout with neighbor averaging instead of Tutte-style boundary
// pinning, trading embedding fidelity for always producing *some* drawing.
package layout

import (
	"math"

	"github.com/katalvlaran/topokit/topograph"
)

const (
	rawRelaxIterations = 200
	rawDamping         = 0.5
)

// RawRelaxation lays out g directly from its own adjacency, with no
// planarity or embedding requirement: every vertex starts on a regular
// polygon (ordered by VertexId) and is repeatedly pulled towards the
// average position of its neighbors, damped against its circle anchor so
// the drawing cannot collapse to a single point.
//
// Complexity: O(iterations * (V+E)).
func RawRelaxation(g *topograph.Graph) (*Artifact, error) {
	n := g.VertexCount()
	pos := make(map[topograph.VertexId]Point, n)
	anchor := make(map[topograph.VertexId]Point, n)

	radius := float64(n)
	if radius < 1 {
		radius = 1
	}
	for v := 0; v < n; v++ {
		angle := 2 * math.Pi * float64(v) / float64(n)
		p := Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		pos[topograph.VertexId(v)] = p
		anchor[topograph.VertexId(v)] = p
	}

	adj := make([][]topograph.VertexId, n)
	for _, rec := range g.Edges() {
		if rec.U == rec.V {
			continue
		}
		adj[rec.U] = append(adj[rec.U], rec.V)
		adj[rec.V] = append(adj[rec.V], rec.U)
	}

	for iter := 0; iter < rawRelaxIterations; iter++ {
		maxDelta := 0.0
		next := make(map[topograph.VertexId]Point, n)
		for v := 0; v < n; v++ {
			vid := topograph.VertexId(v)
			nbrs := adj[v]
			if len(nbrs) == 0 {
				next[vid] = pos[vid]
				continue
			}
			var sx, sy float64
			for _, w := range nbrs {
				p := pos[w]
				sx += p.X
				sy += p.Y
			}
			avg := Point{X: sx / float64(len(nbrs)), Y: sy / float64(len(nbrs))}
			a := anchor[vid]
			np := Point{
				X: rawDamping*avg.X + (1-rawDamping)*a.X,
				Y: rawDamping*avg.Y + (1-rawDamping)*a.Y,
			}
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
