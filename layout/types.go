// Package layout implements coordinate synthesis from a fixed embedding:
// straight-line relaxation, orthogonal bend-minimized drawing via mcflow,
// and planarization of nonplanar inputs via dual routing with dummy-vertex
// insertion.
package layout

import (
	"math"

	"github.com/katalvlaran/topokit/topoerr"
	"github.com/katalvlaran/topokit/topograph"
)

// ErrLayoutInfeasible is re-exported from topoerr.
var ErrLayoutInfeasible = topoerr.ErrLayoutInfeasible

// ErrPlanarizationFailed is re-exported from topoerr.
var ErrPlanarizationFailed = topoerr.ErrPlanarizationFailed

// Mode tags which layout algorithm produced an Artifact.
type Mode int

const (
	StraightLine Mode = iota
	Orthogonal
	PlanarizationStraight
	PlanarizationOrthogonal
)

// Point is a clamped 2D coordinate. Values are clamped to [-1e7, 1e7];
// NaN/Inf map to 0, per the shared coordinate contract every layout
// artifact honors.
type Point struct {
	X, Y float64
}

// Clamp enforces the coordinate contract in place.
func (p *Point) Clamp() {
	p.X = clampCoord(p.X)
	p.Y = clampCoord(p.Y)
}

func clampCoord(v float64) float64 {
	if v != v || v > math.MaxFloat64 || v < -math.MaxFloat64 { // NaN or ±Inf
		return 0
	}
	if v > 1e7 {
		return 1e7
	}
	if v < -1e7 {
		return -1e7
	}
	return v
}

// EdgeRoute is the rectilinear (or straight) polyline drawn for one edge.
type EdgeRoute struct {
	Edge     topograph.EdgeId
	U, V     topograph.VertexId
	Polyline []Point
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Artifact is the final layout result.
type Artifact struct {
	Mode       Mode
	Crossings  int
	Bends      int
	Positions  map[topograph.VertexId]Point
	EdgeRoutes []EdgeRoute
	BBox       BBox
}
