// File: pipeline.go — ComputeSync: the eight-stage orchestrator,
// instrumented with OpenTelemetry spans/histogram per stage, honoring
// cancellation at every stage boundary, and downgrading the requested
// layout mode when planarity forbids it.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/topokit/layout"
	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/planarity"
	"github.com/katalvlaran/topokit/topoerr"
	"github.com/katalvlaran/topokit/topograph"
)

var (
	tracer = otel.Tracer("topokit/worker")
	meter  = otel.Meter("topokit/worker")
)

var stageDuration = func() metric.Float64Histogram {
	h, _ := meter.Float64Histogram("topokit.worker.stage.duration_ms",
		metric.WithDescription("Wall-clock duration of one compute pipeline stage"),
		metric.WithUnit("ms"))
	return h
}()

// ComputeSync runs the full compute pipeline for one request, emitting
// progress/partial/result/error Events on emit as it goes (emit may be
// nil). It returns the same Result delivered via an EventResult, or the
// error that produced the EventError (including a cancellation, reported
// with message "Computation cancelled").
func ComputeSync(ctx context.Context, requestID string, payload *Payload, emit Emit) (*Result, error) {
	ctx, rootSpan := tracer.Start(ctx, "worker.compute", trace.WithAttributes(
		attribute.String("request_id", requestID),
		attribute.String("dataset_id", payload.DatasetID),
	))
	defer rootSpan.End()

	result := &Result{TimingsMs: make(map[Stage]int64, len(stageOrder))}

	fail := func(err error) (*Result, error) {
		rootSpan.RecordError(err)
		rootSpan.SetStatus(codes.Error, err.Error())
		emit.emit(Event{Type: EventError, RequestID: requestID, Error: ErrorInfo{Message: errMessage(err)}})
		clearCancelled(requestID)
		return nil, err
	}
	cancelErr := func() error { return fmt.Errorf("worker: ComputeSync: %w", ErrCancelled) }

	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- sample ---
	var sample sampleResult
	if err := runStage(ctx, requestID, StageSample, emit, result, func() error {
		sample = sampleBFS(payload, emit, requestID)
		return nil
	}); err != nil {
		return fail(err)
	}
	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- build-graph ---
	var g *topograph.Graph
	if err := runStage(ctx, requestID, StageBuildGraph, emit, result, func() error {
		g = buildSampledGraph(sample)
		return nil
	}); err != nil {
		return fail(err)
	}

	result.SampledGraph = SampledGraph{
		Nodes:               sample.nodes,
		Edges:               sample.edges,
		OriginalNodeIndices: sample.originalNodeIndices,
	}
	result.SampledStats = computeSampledStats(g)

	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- planarity ---
	var planResult *planarity.Result
	if err := runStage(ctx, requestID, StagePlanarity, emit, result, func() error {
		var err error
		planResult, err = planarity.TestPlanarity(g,
			planarity.WithTreatDirectedAsUndirected(),
			planarity.WithAllowSelfLoops(planarity.SelfLoopIgnore))
		return err
	}); err != nil {
		return fail(err)
	}

	result.Planarity.IsPlanar = planResult.IsPlanar
	if !planResult.IsPlanar {
		witness := toWitnessInfo(g, planResult.Witness)
		result.Planarity.Witness = witness
		result.Highlights.WitnessEdges = witness.EdgeIds
		if payload.Settings.ShowWitness {
			emit.emit(Event{
				Type:      EventPartial,
				RequestID: requestID,
				Partial: Partial{
					Kind:         PartialWitness,
					WitnessKind:  witness.Kind,
					WitnessEdges: witness.EdgePairs,
				},
			})
		}
	}

	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- embedding ---
	_ = runStage(ctx, requestID, StageEmbedding, emit, result, func() error { return nil })
	result.Planarity.EmbeddingAvailable = planResult.IsPlanar

	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- mesh ---
	var m *mesh.Mesh
	var faces *FacesInfo
	if planResult.IsPlanar {
		if err := runStage(ctx, requestID, StageMesh, emit, result, func() error {
			var err error
			m, err = mesh.BuildHalfEdgeMesh(g, planResult.Embedding)
			if err != nil {
				return err
			}
			sizes := make([]int, m.FaceCount())
			for i, f := range m.Faces {
				sizes[i] = len(f)
			}
			sort.Ints(sizes)
			faces = &FacesInfo{Count: m.FaceCount(), Sizes: sizes}
			emit.emit(Event{
				Type:      EventPartial,
				RequestID: requestID,
				Partial:   Partial{Kind: PartialFaces, FaceSizes: sizes},
			})
			return nil
		}); err != nil {
			return fail(err)
		}
	} else {
		_ = runStage(ctx, requestID, StageMesh, emit, result, func() error { return nil })
	}

	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- layout ---
	var art *layout.Artifact
	effMode := effectiveMode(payload.Settings.Mode, planResult.IsPlanar)
	if err := runStage(ctx, requestID, StageLayout, emit, result, func() error {
		var err error
		art, effMode, err = runLayout(g, m, effMode, payload, sample.originalNodeIndices)
		if err != nil {
			return err
		}
		if payload.Settings.LiveSolve {
			streamLayout(emit, requestID, art, art.Crossings)
		}
		return nil
	}); err != nil {
		return fail(err)
	}
	result.Layout = toLayoutInfo(effMode, art)

	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- report ---
	var rep Report
	if err := runStage(ctx, requestID, StageReport, emit, result, func() error {
		rep = buildReport(g, faces)
		return nil
	}); err != nil {
		return fail(err)
	}
	result.Report = rep
	result.Highlights.ArticulationPoints = rep.Biconnected.ArticulationPoints
	result.Highlights.Bridges = rep.Biconnected.Bridges

	if isCancelled(requestID) {
		return fail(cancelErr())
	}

	// --- serialize ---
	_ = runStage(ctx, requestID, StageSerialize, emit, result, func() error { return nil })

	rootSpan.SetStatus(codes.Ok, "")
	emit.emit(Event{Type: EventResult, RequestID: requestID, Result: result})
	clearCancelled(requestID)
	return result, nil
}

// runStage wraps fn with a progress event, an OpenTelemetry span, a
// stage-duration histogram record, and timingsMs bookkeeping.
func runStage(ctx context.Context, requestID string, stage Stage, emit Emit, result *Result, fn func() error) error {
	emit.emit(Event{Type: EventProgress, RequestID: requestID, Stage: stage})

	_, span := tracer.Start(ctx, "worker."+string(stage))
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	result.TimingsMs[stage] = elapsed.Milliseconds()
	stageDuration.Record(ctx, float64(elapsed.Milliseconds()),
		metric.WithAttributes(attribute.String("stage", string(stage))))

	return err
}

func buildSampledGraph(s sampleResult) *topograph.Graph {
	b := topograph.NewBuilder()
	for _, label := range s.nodes {
		b.AddVertex(topograph.StringLabel(label))
	}
	for _, e := range s.edges {
		_, _ = b.AddEdge(topograph.VertexId(e[0]), topograph.VertexId(e[1]), false)
	}
	return b.Build()
}

func computeSampledStats(g *topograph.Graph) SampledStats {
	n := g.VertexCount()
	maxDeg := 0
	for v := 0; v < n; v++ {
		if d := g.Degree(topograph.VertexId(v)); d > maxDeg {
			maxDeg = d
		}
	}
	return SampledStats{
		Nodes:      n,
		Edges:      g.EdgeCount(),
		Components: countComponents(g),
		MaxDegree:  maxDeg,
	}
}

func countComponents(g *topograph.Graph) int {
	n := g.VertexCount()
	seen := make([]bool, n)
	count := 0
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		count++
		stack := []topograph.VertexId{topograph.VertexId(start)}
		seen[start] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range g.Neighbors(v) {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
	}
	return count
}

// effectiveMode rewrites the requested mode when planarity forbids it:
// a planar-only mode downgrades to its planarization counterpart on a
// nonplanar sample, and a planarization mode upgrades to its plain
// counterpart when the sample turns out to already be planar.
func effectiveMode(requested Mode, isPlanar bool) Mode {
	switch requested {
	case ModePlanarStraight:
		if !isPlanar {
			return ModePlanarizationStraight
		}
	case ModeOrthogonal:
		if !isPlanar {
			return ModePlanarizationOrthog
		}
	case ModePlanarizationStraight:
		if isPlanar {
			return ModePlanarStraight
		}
	case ModePlanarizationOrthog:
		if isPlanar {
			return ModeOrthogonal
		}
	}
	return requested
}

// runLayout dispatches on effMode, applying the documented fallbacks:
// orthogonal infeasibility falls back to straight-line; planarization
// failure falls back to raw relaxation. The returned Mode reflects any
// fallback downgrade actually taken. originalIdx is the sample's new-id ->
// original-dataset-index mapping, needed only for the geo-shaped boundary
// snap.
func runLayout(g *topograph.Graph, m *mesh.Mesh, effMode Mode, payload *Payload, originalIdx []int) (*layout.Artifact, Mode, error) {
	switch effMode {
	case ModePlanarStraight, ModeOrthogonal:
		chooseBoundaryFace(m, payload.Settings.BoundarySelection)

		var art *layout.Artifact
		var err error
		if effMode == ModeOrthogonal {
			art, err = layout.PlanarOrthogonal(g, m)
			if err != nil {
				art, err = layout.PlanarStraightLine(g, m)
				if err != nil {
					return nil, effMode, err
				}
				effMode = ModePlanarStraight
			}
		} else {
			art, err = layout.PlanarStraightLine(g, m)
			if err != nil {
				return nil, effMode, err
			}
		}

		if effMode == ModePlanarStraight && payload.Settings.BoundarySelection == BoundaryGeoShape && payload.Geographic != nil {
			snapBoundaryToEllipse(art, dedupBoundary(m), payload.Geographic, originalIdx)
		}
		return art, effMode, nil

	case ModePlanarizationStraight, ModePlanarizationOrthog:
		orthogonal := effMode == ModePlanarizationOrthog
		art, err := layout.PlanarizationLayout(g, orthogonal)
		if err != nil {
			art, err = layout.RawRelaxation(g)
			if err != nil {
				return nil, effMode, err
			}
		}
		return art, effMode, nil
	}
	return nil, effMode, fmt.Errorf("worker: runLayout: unknown mode %q: %w", effMode, topoerr.ErrBadInput)
}

func dedupBoundary(m *mesh.Mesh) []topograph.VertexId {
	raw := m.WalkFace(m.OuterFace)
	out := raw[:0:0]
	for i, v := range raw {
		if i == 0 || v != raw[i-1] {
			out = append(out, v)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func toWitnessInfo(g *topograph.Graph, w *planarity.Witness) *WitnessInfo {
	if w == nil {
		return &WitnessInfo{Kind: "unknown"}
	}
	kind := "unknown"
	switch w.Kind {
	case planarity.WitnessK5:
		kind = "K5"
	case planarity.WitnessK33:
		kind = "K33"
	}
	pairs := make([][2]int, 0, len(w.Edges))
	ids := make([]int, 0, len(w.Edges))
	for _, eid := range w.Edges {
		rec, ok := g.Edge(eid)
		if !ok {
			continue
		}
		u, v := int(rec.U), int(rec.V)
		if u > v {
			u, v = v, u
		}
		pairs = append(pairs, [2]int{u, v})
		ids = append(ids, int(eid))
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return &WitnessInfo{Kind: kind, EdgePairs: pairs, EdgeIds: ids}
}

func toLayoutInfo(mode Mode, art *layout.Artifact) LayoutInfo {
	if art == nil {
		return LayoutInfo{Mode: mode}
	}
	ids := make([]topograph.VertexId, 0, len(art.Positions))
	for v := range art.Positions {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	positions := make([]PositionEntry, len(ids))
	for i, v := range ids {
		p := art.Positions[v]
		positions[i] = PositionEntry{ID: v, X: p.X, Y: p.Y}
	}

	routes := make([]EdgeRouteEntry, len(art.EdgeRoutes))
	for i, r := range art.EdgeRoutes {
		routes[i] = EdgeRouteEntry{Edge: [2]int{int(r.U), int(r.V)}, Points: r.Polyline}
	}

	return LayoutInfo{
		Mode:       mode,
		Crossings:  art.Crossings,
		Bends:      art.Bends,
		Positions:  positions,
		EdgeRoutes: routes,
		BBox:       art.BBox,
	}
}

// errMessage renders err for a terminal error Event, fixing the message to
// the literal string "Computation cancelled" for any cancellation.
func errMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrCancelled) {
		return cancelledMessage
	}
	return err.Error()
}
