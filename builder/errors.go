// Package builder provides deterministic topology constructors over
// topograph.Graph: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
// Grid, RandomSparse, and RandomRegular, retargeted from string-keyed
// vertices to topokit's dense integer topograph.Graph and stripped of any
// weight-generation machinery (topograph carries no edge weight: the
// topology pipeline this module feeds — planarity, mesh, layout — never
// consults one).
//
// Build(cons...) applies each Constructor to a shared topograph.Builder in
// order, wrapping the first error with call-site context, never attempting
// partial cleanup.
package builder

import "errors"

// ErrTooFewVertices indicates a constructor's size parameter is below the
// minimum needed to produce a meaningful topology (e.g. Cycle(2)).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrInvalidProbability indicates RandomSparse's edge probability is outside
// [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of [0,1]")

// ErrConstructFailed wraps a nil Constructor passed to Build.
var ErrConstructFailed = errors.New("builder: nil constructor")

// ErrInvalidDegree indicates RandomRegular's degree is negative, >= n, or
// makes n*d odd (no simple graph realizes it).
var ErrInvalidDegree = errors.New("builder: invalid regular degree")

const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minPartitionSize = 1
	minGridDim       = 1
)
