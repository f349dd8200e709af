// Package spqr implements triconnected-component (SPQR-tree) decomposition
// of a biconnected graph via iterative split-pair search, generalizing
// topodfs's BC-tree node/adjacency shape to a second tree-of-skeletons
// structure.
package spqr

import (
	"github.com/katalvlaran/topokit/topoerr"
	"github.com/katalvlaran/topokit/topograph"
)

// ErrBadInput is re-exported from topoerr.
var ErrBadInput = topoerr.ErrBadInput

// ErrInternal is re-exported from topoerr.
var ErrInternal = topoerr.ErrInternal

// NodeKind tags an SPQR-tree node's variant.
type NodeKind int

const (
	// SNode is a series cycle.
	SNode NodeKind = iota
	// PNode is a parallel bundle between two poles.
	PNode
	// RNode is a triconnected rigid core.
	RNode
	// QNode wraps a single real edge.
	QNode
)

func (k NodeKind) String() string {
	switch k {
	case SNode:
		return "S"
	case PNode:
		return "P"
	case RNode:
		return "R"
	case QNode:
		return "Q"
	default:
		return "?"
	}
}

// EdgeKind tags a skeleton edge as real (traceable to the original graph)
// or virtual (introduced by a split, paired with exactly one other
// occurrence elsewhere in the tree).
type EdgeKind int

const (
	RealEdge EdgeKind = iota
	VirtualEdge
)

// SkeletonEdge is one edge of a node's skeleton graph.
type SkeletonEdge struct {
	Kind    EdgeKind
	Real    topograph.EdgeId // valid iff Kind == RealEdge
	Virtual int              // valid iff Kind == VirtualEdge
	U, V    topograph.VertexId
}

// Node is one SPQR-tree node: its kind and its skeleton graph.
type Node struct {
	Kind     NodeKind
	Vertices []topograph.VertexId
	Edges    []SkeletonEdge
}

// Tree is an SPQR tree: Adj[i] lists the tree-neighbor indices of Nodes[i].
type Tree struct {
	Nodes []Node
	Adj   [][]int
}

// Forest is the result of decomposing a (possibly non-biconnected) graph:
// one Tree per biconnected block, plus the cut vertices joining them.
type Forest struct {
	Trees              []*Tree
	ArticulationPoints  []topograph.VertexId
}
