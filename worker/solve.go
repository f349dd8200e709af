// File: solve.go — boundary-face selection strategies and the live-solve
// streaming presentation of a layout. The geometry itself is always
// produced by the layout package's convergent relaxation (so a request's
// final positions/edgeRoutes are identical whether or not LiveSolve is
// set, preserving determinism). On every planar request this file decides
// (a) which face is pinned as the boundary and (b) an optional geo-shaped
// ellipse snap of that boundary via a gonum PCA of the dataset's
// geographic coordinates; what LiveSolve adds is (c) paced
// "positions"/"metric" partial emissions that interpolate towards the
// converged result so a host UI can animate the solve.
package worker

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/topokit/layout"
	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/topograph"
)

// minStreamDuration / maxStreamDuration bound the live-solve streaming
// phase's total wall time to keep the animation visually smooth without
// stalling the caller.
const (
	minStreamDuration = 900 * time.Millisecond
	maxStreamDuration = 2200 * time.Millisecond
	streamFrames      = 12
)

// chooseBoundaryFace picks a face index of m (length >= 3) per strategy,
// sets m.OuterFace to it, and returns the chosen index. If no face has
// length >= 3 (a degenerate mesh), m.OuterFace is left untouched.
func chooseBoundaryFace(m *mesh.Mesh, strategy BoundarySelection) int {
	type candidate struct {
		idx, size int
	}
	var cands []candidate
	for i, f := range m.Faces {
		if len(f) >= 3 {
			cands = append(cands, candidate{idx: i, size: len(f)})
		}
	}
	if len(cands) == 0 {
		return m.OuterFace
	}

	target := 4.0 * math.Sqrt(float64(m.VertexCount()))
	low, high := 3.0, float64(m.VertexCount())
	target = floats.Min([]float64{high, floats.Max([]float64{low, target})})

	best := cands[0]
	bestScore := math.Inf(1)
	for _, c := range cands {
		var score float64
		switch strategy {
		case BoundaryLargest:
			score = -float64(c.size)
		case BoundarySmall:
			score = float64(c.size)
		case BoundaryMedium, BoundaryGeoShape:
			score = math.Abs(float64(c.size) - target)
		default: // BoundaryAuto
			score = math.Abs(float64(c.size) - target)
			if float64(c.size) > target {
				score += 0.5 * (float64(c.size) - target)
			}
		}
		if score < bestScore || (score == bestScore && c.idx < best.idx) {
			best, bestScore = c, score
		}
	}
	m.OuterFace = best.idx
	return best.idx
}

// snapBoundaryToEllipse reshapes a, in place, so its boundary vertices lie
// on an ellipse whose orientation and aspect ratio come from the principal
// axes (PCA) of the geographic coordinates of the boundary's original
// nodes. Interior positions are left untouched (the subsequent relaxation
// pass, already baked into `a` by the layout package, treated the boundary
// as fixed, so this is a pure post-hoc reshaping of the pinned ring).
func snapBoundaryToEllipse(a *layout.Artifact, boundary []topograph.VertexId, geo *Geographic, originalIdx []int) {
	if geo == nil || len(boundary) < 3 {
		return
	}

	n := len(boundary)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, v := range boundary {
		orig := originalIdx[int(v)]
		if orig < 0 || orig >= len(geo.X) || orig >= len(geo.Y) {
			return // incomplete geographic data: skip the snap entirely
		}
		xs[i] = geo.X[orig]
		ys[i] = geo.Y[orig]
	}

	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(n)
	my /= float64(n)

	var sxx, syy, sxy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	sxx /= float64(n)
	syy /= float64(n)
	sxy /= float64(n)

	cov := mat.NewSymDense(2, []float64{sxx, sxy, sxy, syy})
	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// gonum returns eigenvalues ascending; the major axis is the larger one.
	majorAxis, minorAxis := 1, 0
	if values[0] > values[1] {
		majorAxis, minorAxis = 0, 1
	}
	majorVal, minorVal := values[majorAxis], values[minorAxis]
	angle0 := math.Atan2(vectors.At(1, majorAxis), vectors.At(0, majorAxis))

	ratio := 1.0
	if majorVal > 1e-12 {
		ratio = math.Sqrt(minorVal / majorVal)
	}
	if ratio < 0.2 {
		ratio = 0.2
	}
	if ratio > 1 {
		ratio = 1
	}

	cos0, sin0 := math.Cos(angle0), math.Sin(angle0)
	for _, v := range boundary {
		p := a.Positions[v]
		radius := math.Hypot(p.X, p.Y)
		theta := math.Atan2(p.Y, p.X) - angle0
		lx := radius * math.Cos(theta)
		ly := radius * ratio * math.Sin(theta)
		np := layout.Point{
			X: lx*cos0 - ly*sin0,
			Y: lx*sin0 + ly*cos0,
		}
		np.Clamp()
		a.Positions[v] = np
	}
	recomputeRoutes(a)
}

// recomputeRoutes re-derives every straight-line EdgeRoute's endpoints from
// the (possibly just reshaped) Positions map; used after snapBoundaryToEllipse
// touches boundary positions post-layout. Only meaningful for straight-line
// modes (orthogonal/planarization routes carry intermediate bend/dummy
// points that a boundary reshape must not silently invalidate, so callers
// only invoke the ellipse snap for straight-line effective modes).
func recomputeRoutes(a *layout.Artifact) {
	for i, r := range a.EdgeRoutes {
		if len(r.Polyline) != 2 {
			continue
		}
		a.EdgeRoutes[i].Polyline = []layout.Point{a.Positions[r.U], a.Positions[r.V]}
	}
}

// streamLayout emits paced "positions" and "metric" partial events that
// interpolate from an all-origin start towards final's converged
// positions, then returns: final is always the value the caller should
// treat as the request's actual result. The interpolation is purely a
// presentation device, streamed as ordinary partial events rather than a
// separate channel; it does not re-run relaxation.
func streamLayout(emit Emit, requestID string, final *layout.Artifact, crossings int) {
	ids := make([]topograph.VertexId, 0, len(final.Positions))
	for v := range final.Positions {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// streamFrames-1 inter-frame sleeps span the target total duration.
	frameDuration := minStreamDuration / time.Duration(streamFrames-1)

	finalVec := make([]float64, 0, 2*len(ids))
	for _, v := range ids {
		p := final.Positions[v]
		finalVec = append(finalVec, p.X, p.Y)
	}
	finalNorm := floats.Norm(finalVec, 2)
	if finalNorm == 0 {
		finalNorm = 1
	}

	frameVec := make([]float64, len(finalVec))
	for iter := 1; iter <= streamFrames; iter++ {
		if isCancelled(requestID) {
			return
		}
		frac := float64(iter) / float64(streamFrames)
		entries := make([]PositionEntry, len(ids))
		for i, v := range ids {
			p := final.Positions[v]
			entries[i] = PositionEntry{ID: v, X: p.X * frac, Y: p.Y * frac}
			frameVec[2*i], frameVec[2*i+1] = entries[i].X, entries[i].Y
		}
		residual := floats.Distance(frameVec, finalVec, 2) / finalNorm

		emit.emit(Event{
			Type:      EventPartial,
			RequestID: requestID,
			Partial:   Partial{Kind: PartialPositions, Positions: entries, Iter: iter},
		})
		emit.emit(Event{
			Type:      EventPartial,
			RequestID: requestID,
			Partial:   Partial{Kind: PartialMetric, Crossings: crossings, Residual: residual},
		})
		if iter < streamFrames {
			time.Sleep(frameDuration)
		}
		if isCancelled(requestID) {
			return
		}
	}
}
