// File: orthogonal.go — orthogonalLayout: start from the straight-line
// base, give each face a supply equal to its boundary length minus 4 (plus
// 4 for the outer face; vertex degrees do not enter it), minimize total
// bends with an mcflow network over the dual faces (two opposing unit-cost
// arcs per primal edge), then route each edge as a rectilinear polyline
// carrying its assigned bend count. When that network is infeasible, every
// edge is routed with zero flow-assigned bends.
package layout

import (
	"math"

	"github.com/katalvlaran/topokit/mcflow"
	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/topograph"
)

const bendArcCapacity = 1 << 16

// PlanarOrthogonal lays out a planar graph with axis-aligned edges,
// minimizing the total number of bends via a min-cost flow over the dual
// faces.
//
// Complexity: O(F+E) to build the network, plus mcflow.Solve's cost.
func PlanarOrthogonal(g *topograph.Graph, m *mesh.Mesh) (*Artifact, error) {
	base, err := PlanarStraightLine(g, m)
	if err != nil {
		return nil, err
	}

	faceCount := m.FaceCount()
	cornerCount := make([]int, faceCount)
	for f := 0; f < faceCount; f++ {
		cornerCount[f] = len(m.Faces[f])
	}

	demand := make([]int, faceCount)
	for f := 0; f < faceCount; f++ {
		target := 4
		if f == m.OuterFace {
			target = -4
		}
		demand[f] = cornerCount[f] - target
	}

	type edgeArcs struct {
		edge       topograph.EdgeId
		u, v       topograph.VertexId
		fwd, back  int // mcflow.Input arc indices
	}

	in := mcflow.Input{NodeCount: faceCount, Demands: demand}
	var edges []edgeArcs
	for h := 0; h < m.HalfEdgeCount(); h++ {
		hid := mesh.HalfEdgeId(h)
		twin := m.Twin[hid]
		if int(hid) >= int(twin) {
			continue
		}
		f, gFace := m.Face[hid], m.Face[twin]
		fwdIdx := len(in.Arcs)
		in.Arcs = append(in.Arcs, mcflow.Arc{From: f, To: gFace, Upper: bendArcCapacity, Cost: 1})
		backIdx := len(in.Arcs)
		in.Arcs = append(in.Arcs, mcflow.Arc{From: gFace, To: f, Upper: bendArcCapacity, Cost: 1})
		edges = append(edges, edgeArcs{
			edge: m.Edge[hid], u: m.Origin[hid], v: m.Origin[twin],
			fwd: fwdIdx, back: backIdx,
		})
	}

	bendsByEdge := make(map[topograph.EdgeId]int, len(edges))
	res, err := mcflow.Solve(in)
	if err == nil && res.Feasible {
		for _, e := range edges {
			bendsByEdge[e.edge] = res.Flow[e.fwd] + res.Flow[e.back]
		}
	}
	// An infeasible or erroring network (possible for faces whose degree
	// can't balance under this simplified accounting) degrades gracefully
	// to the straight-line routing's minimal forced corners only.

	art := &Artifact{Mode: Orthogonal, Positions: base.Positions}
	totalBends := 0
	for _, rec := range g.Edges() {
		u, v := base.Positions[rec.U], base.Positions[rec.V]
		bends := bendsByEdge[rec.ID]
		poly := rectilinearRoute(u, v, bends)
		totalBends += len(poly) - 2
		art.EdgeRoutes = append(art.EdgeRoutes, EdgeRoute{Edge: rec.ID, U: rec.U, V: rec.V, Polyline: poly})
	}
	art.Bends = totalBends
	art.Crossings = countCrossings(art.EdgeRoutes)
	art.BBox = computeBBox(base.Positions)

	return art, nil
}

// rectilinearRoute builds an axis-aligned polyline from u to v carrying
// exactly bends interior corners, alternating horizontal/vertical segments
// starting with whichever axis has the larger coordinate delta. Endpoints
// with a nonzero delta on both axes always need at least one corner
// regardless of the flow-assigned bend count.
func rectilinearRoute(u, v Point, bends int) []Point {
	dx, dy := v.X-u.X, v.Y-u.Y
	if bends < 0 {
		bends = 0
	}
	if dx == 0 || dy == 0 {
		if bends == 0 {
			return []Point{u, v}
		}
	} else if bends == 0 {
		bends = 1
	}

	segments := bends + 1
	firstHorizontal := math.Abs(dx) >= math.Abs(dy)
	hCount, vCount := 0, 0
	for i := 0; i < segments; i++ {
		if (i%2 == 0) == firstHorizontal {
			hCount++
		} else {
			vCount++
		}
	}
	if hCount == 0 {
		hCount = 1
	}
	if vCount == 0 {
		vCount = 1
	}
	dxStep, dyStep := dx/float64(hCount), dy/float64(vCount)

	pts := make([]Point, 0, segments+1)
	cur := u
	pts = append(pts, cur)
	for i := 0; i < segments; i++ {
		if (i%2 == 0) == firstHorizontal {
			cur = Point{X: cur.X + dxStep, Y: cur.Y}
		} else {
			cur = Point{X: cur.X, Y: cur.Y + dyStep}
		}
		pts = append(pts, cur)
	}
	pts[len(pts)-1] = v

	return pts
}
