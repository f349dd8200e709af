// Package worker implements the deterministic compute pipeline that
// sequences sampling, planarity testing, embedding, mesh construction,
// layout, and reporting over a sampled input graph, emitting staged
// progress/partial events and honoring cancellation and coordinate
// clamping throughout. ComputeSync is callable identically from a
// background goroutine or synchronously.
//
// The pipeline is logically single-threaded cooperative per request:
// ComputeSync owns all of its working memory, and the only shared state
// across concurrent requests is the process-wide cancellation registry in
// cancel.go.
package worker

import (
	"github.com/katalvlaran/topokit/layout"
	"github.com/katalvlaran/topokit/topograph"
)

// Numeric limits on a compute request's sampled graph and coordinates.
const (
	HardNodeCap = 350
	HardEdgeCap = 1200
	CoordLimit  = 1e7

	// sampleEmitEvery is how often (in visited-vertex count) the sample
	// stage emits a sampleVisited partial.
	sampleEmitEvery = 24
)

// Mode names the requested (or effective) layout mode; the wire strings
// are used directly as the Go constants' values.
type Mode string

const (
	ModePlanarStraight        Mode = "planar-straight"
	ModeOrthogonal            Mode = "orthogonal"
	ModePlanarizationStraight Mode = "planarization-straight"
	ModePlanarizationOrthog   Mode = "planarization-orthogonal"
)

// BoundarySelection names a boundary-face choice strategy.
type BoundarySelection string

const (
	BoundaryAuto     BoundarySelection = "auto"
	BoundaryLargest  BoundarySelection = "largest"
	BoundaryMedium   BoundarySelection = "medium"
	BoundarySmall    BoundarySelection = "small"
	BoundaryGeoShape BoundarySelection = "geo-shaped"
)

// Stage names one of the pipeline stages, in fixed execution order.
type Stage string

const (
	StageSample     Stage = "sample"
	StageBuildGraph Stage = "build-graph"
	StagePlanarity  Stage = "planarity"
	StageEmbedding  Stage = "embedding"
	StageMesh       Stage = "mesh"
	StageLayout     Stage = "layout"
	StageReport     Stage = "report"
	StageSerialize  Stage = "serialize"
)

// stageOrder fixes the sequencing every request follows.
var stageOrder = []Stage{
	StageSample, StageBuildGraph, StagePlanarity, StageEmbedding,
	StageMesh, StageLayout, StageReport, StageSerialize,
}

// Geographic carries per-node (lon, lat) coordinates, parallel to Nodes.
type Geographic struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Settings configures one compute request.
type Settings struct {
	Mode              Mode              `json:"mode"`
	BoundarySelection BoundarySelection `json:"boundarySelection"`
	MaxNodes          int               `json:"maxNodes"`
	MaxEdges          int               `json:"maxEdges"`
	Seed              int               `json:"seed"`
	ShowWitness       bool              `json:"showWitness"`
	LiveSolve         bool              `json:"liveSolve,omitempty"`
}

// Payload is a single compute request's input.
type Payload struct {
	DatasetID  string      `json:"datasetId"`
	SampleID   string      `json:"sampleId"`
	Nodes      []string    `json:"nodes"`
	Edges      [][2]int    `json:"edges"`
	Geographic *Geographic `json:"geographic,omitempty"`
	Settings   Settings    `json:"settings"`
}

// SampledGraph reports the graph actually computed over, after BFS
// subsampling (original node labels and the indices they came from).
type SampledGraph struct {
	Nodes               []string `json:"nodes"`
	Edges               [][2]int `json:"edges"`
	OriginalNodeIndices []int    `json:"originalNodeIndices"`
}

// SampledStats summarises the sampled graph's shape.
type SampledStats struct {
	Nodes      int `json:"nodes"`
	Edges      int `json:"edges"`
	Components int `json:"components"`
	MaxDegree  int `json:"maxDegree"`
}

// WitnessInfo is the planarity witness as reported in a WorkerResult.
type WitnessInfo struct {
	Kind      string   `json:"kind"` // "K5", "K33", or "unknown"
	EdgePairs [][2]int `json:"edgePairs"`
	EdgeIds   []int    `json:"edgeIds,omitempty"`
}

// PlanarityInfo reports the planarity stage's outcome.
type PlanarityInfo struct {
	IsPlanar           bool         `json:"isPlanar"`
	Witness            *WitnessInfo `json:"witness,omitempty"`
	EmbeddingAvailable bool         `json:"embeddingAvailable"`
}

// FacesInfo reports the mesh stage's face census.
type FacesInfo struct {
	Count int   `json:"count"`
	Sizes []int `json:"sizes"` // ascending
}

// BiconnectedInfo reports BC decomposition results: full block,
// articulation-point, and bridge lists rather than bare counts.
type BiconnectedInfo struct {
	Blocks             [][]int `json:"blocks"`
	ArticulationPoints []int   `json:"articulationPoints"`
	Bridges            []int   `json:"bridges"`
}

// SPQRCounts tallies node kinds in an SPQR tree/forest.
type SPQRCounts struct {
	S int `json:"S"`
	P int `json:"P"`
	R int `json:"R"`
	Q int `json:"Q"`
}

// SPQRInfo reports SPQR decomposition results.
type SPQRInfo struct {
	Nodes  int        `json:"nodes"`
	Counts SPQRCounts `json:"counts"`
}

// Report bundles the ancillary topological analyses.
type Report struct {
	Faces       *FacesInfo      `json:"faces,omitempty"`
	Biconnected BiconnectedInfo `json:"biconnected"`
	SPQR        *SPQRInfo       `json:"spqr,omitempty"`
}

// PositionEntry is one [VertexId, x, y] triple, sorted by VertexId.
type PositionEntry struct {
	ID topograph.VertexId `json:"id"`
	X  float64            `json:"x"`
	Y  float64            `json:"y"`
}

// EdgeRouteEntry is one edge's rendered polyline.
type EdgeRouteEntry struct {
	Edge   [2]int         `json:"edge"`
	Points []layout.Point `json:"points"`
}

// LayoutInfo reports the layout stage's artifact, with the effective mode
// (possibly downgraded from the requested one).
type LayoutInfo struct {
	Mode       Mode             `json:"mode"`
	Crossings  int              `json:"crossings"`
	Bends      int              `json:"bends"`
	Positions  []PositionEntry  `json:"positions"`
	EdgeRoutes []EdgeRouteEntry `json:"edgeRoutes"`
	BBox       layout.BBox      `json:"bbox"`
}

// Highlights carries auxiliary ids for UI highlighting.
type Highlights struct {
	WitnessEdges       []int `json:"witnessEdges,omitempty"`
	ArticulationPoints []int `json:"articulationPoints,omitempty"`
	Bridges            []int `json:"bridges,omitempty"`
}

// Result is the complete, serialisable outcome of one compute request.
type Result struct {
	TimingsMs    map[Stage]int64 `json:"timingsMs"`
	SampledGraph SampledGraph    `json:"sampledGraph"`
	SampledStats SampledStats    `json:"sampledStats"`
	Planarity    PlanarityInfo   `json:"planarity"`
	Report       Report          `json:"report"`
	Layout       LayoutInfo      `json:"layout"`
	Highlights   Highlights      `json:"highlights"`
}

// ErrorInfo carries a terminal error event's payload.
type ErrorInfo struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Partial is a tagged union over the five partial-result kinds a compute
// request may stream; Kind discriminates which other fields are
// populated.
type Partial struct {
	Kind PartialKind

	// PartialSampleVisited
	Visited []int

	// PartialWitness
	WitnessKind  string
	WitnessEdges [][2]int

	// PartialFaces
	FaceSizes []int

	// PartialPositions
	Positions []PositionEntry
	Iter      int

	// PartialMetric
	Crossings int
	Residual  float64
}

// PartialKind discriminates a Partial's payload.
type PartialKind string

const (
	PartialSampleVisited PartialKind = "sampleVisited"
	PartialWitness       PartialKind = "witness"
	PartialFaces         PartialKind = "faces"
	PartialPositions     PartialKind = "positions"
	PartialMetric        PartialKind = "metric"
)

// Event is the sum type emitted on a compute request's progress/partial
// channel: exactly one of the typed fields below is non-zero, discriminated
// by Type.
type Event struct {
	Type      EventType
	RequestID string

	// EventProgress
	Stage  Stage
	Detail string

	// EventPartial
	Partial Partial

	// EventResult
	Result *Result

	// EventError
	Error ErrorInfo
}

// EventType discriminates an Event.
type EventType string

const (
	EventProgress EventType = "progress"
	EventPartial  EventType = "partial"
	EventResult   EventType = "result"
	EventError    EventType = "error"
)

// Emit receives one Event at a time, in stage order, for the lifetime of a
// single ComputeSync call. A nil Emit is legal (events are silently
// dropped); ComputeSync's return value is unaffected either way.
type Emit func(Event)

func (e Emit) emit(ev Event) {
	if e != nil {
		e(ev)
	}
}
