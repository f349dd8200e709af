// Package order implements the "O" component: st-numbering and the
// bipolar (st-) orientation it induces. No other package of this module
// calls it.
package order

import (
	"github.com/katalvlaran/topokit/topoerr"
	"github.com/katalvlaran/topokit/topograph"
)

// ErrBadInput is re-exported from topoerr.
var ErrBadInput = topoerr.ErrBadInput

// Numbering is the result of StNumbering: Number[v] gives v's 1-indexed
// position, with Number[s] == 1 and Number[t] == len(Number).
type Numbering struct {
	Number []int
	Order  []topograph.VertexId // vertices in increasing number order
}

// Orientation is a bipolar (acyclic, single-source-s, single-sink-t)
// orientation of a graph's edges.
type Orientation struct {
	// From[e]/To[e] give edge e's oriented direction (From -> To), indexed
	// by EdgeId.
	From, To []topograph.VertexId
}
