// Package planarity implements the "P" component of the topology pipeline:
// the left-right planarity test (Brandes' DFS-with-conflict-pairs
// algorithm). TestPlanarity decides whether an undirected multigraph is
// topologically planar, returning a combinatorial embedding (rotation
// system) when it is, or a Kuratowski (K5 / K3,3) witness when it is not.
//
// The algorithm runs as three passes over one DFS tree, all using explicit
// frame stacks rather than recursion, to avoid deep call-stack growth on
// large inputs:
//
//  1. orientation — assigns a DFS-consistent direction to every edge and
//     computes lowpt/lowpt2/nesting-depth per edge.
//  2. testing — walks edges in nesting-depth order maintaining a stack of
//     conflict pairs (left/right intervals); a forced swap that cannot be
//     satisfied proves nonplanarity.
//  3. embedding — (only if testing succeeds) builds each vertex's rotation
//     by inserting tree edges at the front of the child's list and back
//     edges relative to the ancestor's left/right reference, using the
//     resolved sign to choose the side.
package planarity

import (
	"github.com/katalvlaran/topokit/topoerr"
	"github.com/katalvlaran/topokit/topograph"
)

// ErrBadInput is re-exported from topoerr.
var ErrBadInput = topoerr.ErrBadInput

// SelfLoopPolicy controls how TestPlanarity treats self-loop edges.
type SelfLoopPolicy int

const (
	// SelfLoopReject fails with ErrBadInput if any self-loop is present.
	SelfLoopReject SelfLoopPolicy = iota
	// SelfLoopIgnore strips self-loops before testing and records their
	// ids in Meta.IgnoredSelfLoops.
	SelfLoopIgnore
)

// Options configures TestPlanarity.
type Options struct {
	// TreatDirectedAsUndirected, if true, ignores Edge.Directed for every
	// edge; if false (default) any directed edge fails with ErrBadInput.
	TreatDirectedAsUndirected bool
	// AllowSelfLoops selects the self-loop policy (default SelfLoopReject).
	AllowSelfLoops SelfLoopPolicy
}

// Option is a functional option for Options.
type Option func(*Options)

// WithTreatDirectedAsUndirected enables coercion of directed edges.
func WithTreatDirectedAsUndirected() Option {
	return func(o *Options) { o.TreatDirectedAsUndirected = true }
}

// WithAllowSelfLoops sets the self-loop policy.
func WithAllowSelfLoops(p SelfLoopPolicy) Option {
	return func(o *Options) { o.AllowSelfLoops = p }
}

func defaultOptions() Options {
	return Options{TreatDirectedAsUndirected: false, AllowSelfLoops: SelfLoopReject}
}

// RotationRef is one entry of a vertex's cyclic rotation: the incident edge
// and the vertex at its other end.
type RotationRef struct {
	Edge topograph.EdgeId
	To   topograph.VertexId
}

// RotationSystem is a per-vertex cyclic ordering of incident half-edges, as
// produced by TestPlanarity's embedding pass or by mesh.RotationFromAdjacency.
type RotationSystem struct {
	// Rotation[v] is v's cyclic adjacency order.
	Rotation [][]RotationRef
}

// Meta carries sanitisation side effects of TestPlanarity.
type Meta struct {
	// IgnoredSelfLoops lists self-loop edge ids stripped before testing
	// (only populated under SelfLoopIgnore).
	IgnoredSelfLoops []topograph.EdgeId
	// TreatedDirectedAsUndirected reports whether directed edges were
	// coerced for this run.
	TreatedDirectedAsUndirected bool
}

// WitnessKind discriminates a Kuratowski witness.
type WitnessKind int

const (
	// WitnessK5 marks a K5 subdivision witness.
	WitnessK5 WitnessKind = iota
	// WitnessK33 marks a K3,3 subdivision witness.
	WitnessK33
	// WitnessUnknown marks a witness that could not be classified as
	// exactly K5 or K3,3 after suppressing degree-2 chains (a fallback
	// classification by vertex count; the subgraph is still nonplanar).
	WitnessUnknown
)

// Witness is a Kuratowski subdivision proving nonplanarity, referring back
// into the original graph's ids.
type Witness struct {
	Kind     WitnessKind
	Vertices []topograph.VertexId
	Edges    []topograph.EdgeId
}

// Result is the outcome of TestPlanarity: exactly one of Embedding or
// Witness is set (IsPlanar discriminates).
type Result struct {
	IsPlanar  bool
	Embedding *RotationSystem // set iff IsPlanar
	Witness   *Witness        // set iff !IsPlanar
	Meta      Meta
}
