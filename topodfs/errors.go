// Package topodfs is the "D" component of the topology pipeline: DFS-based
// structural analyses over topograph.Graph — Tarjan strongly-connected
// components, biconnected-component decomposition (with articulation points
// and bridges), and the block-cut (BC) tree built from a decomposition.
//
// All traversals use an explicit stack of frame records (a cursor `iter`
// into the current vertex's adjacency plus a resume point) instead of
// recursion, so deep graphs never risk a stack overflow.
package topodfs

import "github.com/katalvlaran/topokit/topoerr"

// ErrBadInput is re-exported from topoerr for errors.Is checks local to this
// package.
var ErrBadInput = topoerr.ErrBadInput
