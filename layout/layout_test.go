package layout_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/layout"
	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/planarity"
	"github.com/stretchr/testify/require"
)

func TestPlanarStraightLine_GridHasNoCrossings(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)
	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.IsPlanar)
	m, err := mesh.BuildHalfEdgeMesh(g, res.Embedding)
	require.NoError(t, err)

	art, err := layout.PlanarStraightLine(g, m)
	require.NoError(t, err)
	require.Equal(t, layout.StraightLine, art.Mode)
	require.Len(t, art.Positions, g.VertexCount())
	require.Equal(t, 0, art.Crossings)
	for _, p := range art.Positions {
		require.LessOrEqual(t, p.X, 1e7)
		require.GreaterOrEqual(t, p.X, -1e7)
	}
}

func TestPlanarStraightLine_TriangleHasThreeStraightEdges(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)
	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	m, err := mesh.BuildHalfEdgeMesh(g, res.Embedding)
	require.NoError(t, err)

	art, err := layout.PlanarStraightLine(g, m)
	require.NoError(t, err)
	require.Len(t, art.EdgeRoutes, 3)
	for _, r := range art.EdgeRoutes {
		require.Len(t, r.Polyline, 2)
	}
}

func TestPlanarOrthogonal_GridProducesAxisAlignedRoutes(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)
	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	m, err := mesh.BuildHalfEdgeMesh(g, res.Embedding)
	require.NoError(t, err)

	art, err := layout.PlanarOrthogonal(g, m)
	require.NoError(t, err)
	require.Equal(t, layout.Orthogonal, art.Mode)
	for _, r := range art.EdgeRoutes {
		for i := 0; i+1 < len(r.Polyline); i++ {
			a, b := r.Polyline[i], r.Polyline[i+1]
			sameX := a.X == b.X
			sameY := a.Y == b.Y
			require.True(t, sameX || sameY, "segment %d of edge %d is not axis-aligned", i, r.Edge)
		}
	}
}

func TestPlanarizationLayout_K5ReportsCrossings(t *testing.T) {
	g, err := builder.Build(builder.Complete(5))
	require.NoError(t, err)

	art, err := layout.PlanarizationLayout(g, false)
	require.NoError(t, err)
	require.Equal(t, layout.PlanarizationStraight, art.Mode)
	require.Greater(t, art.Crossings, 0)
	require.Len(t, art.EdgeRoutes, g.EdgeCount())
}

func TestPlanarizationLayout_PlanarInputHasNoCrossings(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)

	art, err := layout.PlanarizationLayout(g, false)
	require.NoError(t, err)
	require.Equal(t, 0, art.Crossings)
	require.Len(t, art.EdgeRoutes, g.EdgeCount())
}
