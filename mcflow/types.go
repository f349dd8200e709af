// Package mcflow implements minimum-cost flow with per-arc lower bounds
// via Bellman-Ford potential initialization and successive shortest
// augmenting paths (Dijkstra with reduced costs).
package mcflow

import "github.com/katalvlaran/topokit/topoerr"

// ErrInfeasible is re-exported from topoerr (an alias of
// topoerr.ErrLayoutInfeasible). Solve does not return it: an infeasible
// instance is reported through Result.Feasible.
var ErrInfeasible = topoerr.ErrLayoutInfeasible

// ErrBadInput is re-exported from topoerr.
var ErrBadInput = topoerr.ErrBadInput

// Arc is one directed arc of a min-cost flow instance, with an optional
// lower bound (0 if absent).
type Arc struct {
	From, To   int
	Lower      int
	Upper      int
	Cost       float64
}

// Input is a min-cost flow instance over NodeCount nodes (ids 0..NodeCount-1).
type Input struct {
	NodeCount int
	Arcs      []Arc
	// Demands[i] > 0 means node i supplies that many units; < 0 means it
	// demands that many; nil/zero means transshipment only. Len must be
	// 0 or NodeCount.
	Demands []int
}

// Result is the output of Solve.
type Result struct {
	// Flow[i] is the flow sent on Arcs[i] (>= Arcs[i].Lower, <= Arcs[i].Upper).
	Flow      []int
	TotalCost float64
	Feasible  bool
}
