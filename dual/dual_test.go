package dual_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/dual"
	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/planarity"
	"github.com/stretchr/testify/require"
)

func TestBuildDualGraph_Triangle(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)
	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	m, err := mesh.BuildHalfEdgeMesh(g, res.Embedding)
	require.NoError(t, err)

	d := dual.BuildDualGraph(m, nil)
	require.Equal(t, m.FaceCount(), d.FaceCount())
	// every half-edge of a triangle borders the other face, so each of the
	// 2 faces has 3 outgoing dual arcs.
	require.Len(t, d.Adj[0], 3)
	require.Len(t, d.Adj[1], 3)
}

func TestRouteEdgeFixedEmbedding_GridDiagonal(t *testing.T) {
	g, err := builder.Build(builder.Grid(4, 4))
	require.NoError(t, err)
	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	m, err := mesh.BuildHalfEdgeMesh(g, res.Embedding)
	require.NoError(t, err)
	d := dual.BuildDualGraph(m, nil)

	// vertex 0 (a corner) and vertex 10 (an interior vertex) share no face
	// in the grid; routing between them must cross at least one primal edge.
	route, err := dual.RouteEdgeFixedEmbedding(m, d, 0, 10)
	require.NoError(t, err)
	require.NotEmpty(t, route)
}
