// File: planarization.go — planarizationLayout: extract a maximal planar
// subgraph by greedy edge insertion (re-testing planarity per candidate
// edge via planarity.TestPlanarity), lay that subgraph out, then reinsert
// every deferred edge as a polyline crossing the subgraph's faces via
// dual-graph routing, subdividing each crossing with a dummy point.
package layout

import (
	"fmt"

	"github.com/katalvlaran/topokit/dual"
	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/planarity"
	"github.com/katalvlaran/topokit/topograph"
)

// PlanarizationLayout lays out a possibly-nonplanar graph. orthogonal
// selects whether the subgraph base and reinserted segments are drawn
// straight or rectilinear; the returned Artifact.Mode reflects the choice.
//
// Artifact.Crossings counts the dummy points introduced: one per primal
// edge a deferred edge had to cross to reach its endpoint.
//
// Errors: ErrPlanarizationFailed if the extracted subgraph's embedding or
// mesh cannot be built.
func PlanarizationLayout(g *topograph.Graph, orthogonal bool) (*Artifact, error) {
	subG, kept, deferred := maximalPlanarSubgraph(g)

	res, err := planarity.TestPlanarity(subG, planarity.WithTreatDirectedAsUndirected(), planarity.WithAllowSelfLoops(planarity.SelfLoopIgnore))
	if err != nil || !res.IsPlanar {
		return nil, fmt.Errorf("layout: PlanarizationLayout: extracted subgraph is not planar: %w", ErrPlanarizationFailed)
	}
	m, err := mesh.BuildHalfEdgeMesh(subG, res.Embedding)
	if err != nil {
		return nil, fmt.Errorf("layout: PlanarizationLayout: mesh build failed: %w", ErrPlanarizationFailed)
	}

	mode := PlanarizationStraight
	var base *Artifact
	if orthogonal {
		mode = PlanarizationOrthogonal
		base, err = PlanarOrthogonal(subG, m)
	} else {
		base, err = PlanarStraightLine(subG, m)
	}
	if err != nil {
		return nil, err
	}

	art := &Artifact{Mode: mode, Positions: base.Positions}
	for i, rec := range kept {
		route := base.EdgeRoutes[i]
		art.EdgeRoutes = append(art.EdgeRoutes, EdgeRoute{Edge: rec.ID, U: rec.U, V: rec.V, Polyline: route.Polyline})
	}
	art.Bends = base.Bends

	d := dual.BuildDualGraph(m, nil)
	crossings := 0
	for _, rec := range deferred {
		route, dummies, err := routeDeferredEdge(m, d, base.Positions, rec, orthogonal)
		if err != nil {
			continue // leave it unrouted rather than fail the whole layout
		}
		crossings += dummies
		art.EdgeRoutes = append(art.EdgeRoutes, route)
	}
	art.Crossings = crossings
	art.BBox = computeBBox(art.Positions)

	return art, nil
}

func routeDeferredEdge(m *mesh.Mesh, d *dual.Graph, pos map[topograph.VertexId]Point, rec topograph.EdgeRecord, orthogonal bool) (EdgeRoute, int, error) {
	crossedHalfEdges, err := dual.RouteEdgeFixedEmbedding(m, d, rec.U, rec.V)
	if err != nil {
		return EdgeRoute{}, 0, err
	}

	poly := []Point{pos[rec.U]}
	for _, h := range crossedHalfEdges {
		a, b := pos[m.Origin[h]], pos[m.Target(h)]
		poly = append(poly, Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2})
	}
	poly = append(poly, pos[rec.V])

	if orthogonal {
		var rect []Point
		for i := 0; i+1 < len(poly); i++ {
			seg := rectilinearRoute(poly[i], poly[i+1], 0)
			if i > 0 {
				seg = seg[1:]
			}
			rect = append(rect, seg...)
		}
		poly = rect
	}

	return EdgeRoute{Edge: rec.ID, U: rec.U, V: rec.V, Polyline: poly}, len(crossedHalfEdges), nil
}

// maximalPlanarSubgraph greedily builds a planar subgraph of g by adding
// edges in id order, keeping each candidate iff the resulting subgraph
// stays planar. It returns the subgraph, the edges kept (with original
// ids), and the edges deferred for reinsertion.
//
// Complexity: O(E) planarity tests, each O(V+E): O(E*(V+E)) overall.
func maximalPlanarSubgraph(g *topograph.Graph) (*topograph.Graph, []topograph.EdgeRecord, []topograph.EdgeRecord) {
	n := g.VertexCount()
	kept := make([]topograph.EdgeRecord, 0, g.EdgeCount())
	var deferred []topograph.EdgeRecord

	for _, rec := range g.Edges() {
		if rec.U == rec.V {
			deferred = append(deferred, rec) // self-loops never improve a drawing
			continue
		}
		trial := append(append([]topograph.EdgeRecord(nil), kept...), rec)
		sub := buildGraphFromRecords(n, trial)
		res, err := planarity.TestPlanarity(sub, planarity.WithTreatDirectedAsUndirected())
		if err == nil && res.IsPlanar {
			kept = trial
		} else {
			deferred = append(deferred, rec)
		}
	}

	return buildGraphFromRecords(n, kept), kept, deferred
}

func buildGraphFromRecords(n int, recs []topograph.EdgeRecord) *topograph.Graph {
	b := topograph.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddVertex()
	}
	for _, r := range recs {
		_, _ = b.AddEdge(r.U, r.V, false)
	}
	return b.Build()
}
