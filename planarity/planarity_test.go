package planarity_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/planarity"
	"github.com/katalvlaran/topokit/topograph"
	"github.com/stretchr/testify/require"
)

func TestTriangleIsPlanar(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)

	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.IsPlanar)
	require.NotNil(t, res.Embedding)
	require.Len(t, res.Embedding.Rotation, 3)
	for v, rot := range res.Embedding.Rotation {
		require.Lenf(t, rot, 2, "vertex %d should have degree 2 in a triangle", v)
	}
}

func TestGridIsPlanar(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)

	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.IsPlanar)
}

func TestK5IsNonplanarWithK5Witness(t *testing.T) {
	g, err := builder.Build(builder.Complete(5))
	require.NoError(t, err)

	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.False(t, res.IsPlanar)
	require.NotNil(t, res.Witness)
	require.Equal(t, planarity.WitnessK5, res.Witness.Kind)
	require.Len(t, res.Witness.Vertices, 5)
}

func TestK33IsNonplanarWithK33Witness(t *testing.T) {
	g, err := builder.Build(builder.CompleteBipartite(3, 3))
	require.NoError(t, err)

	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.False(t, res.IsPlanar)
	require.NotNil(t, res.Witness)
	require.Equal(t, planarity.WitnessK33, res.Witness.Kind)
	require.Len(t, res.Witness.Vertices, 6)
}

func TestSquareWithDiagonalIsPlanar(t *testing.T) {
	b := topograph.NewBuilder()
	vs := make([]topograph.VertexId, 4)
	for i := range vs {
		vs[i] = b.AddVertex()
	}
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	for _, p := range pairs {
		_, err := b.AddEdge(vs[p[0]], vs[p[1]], false)
		require.NoError(t, err)
	}
	g := b.Build()

	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.IsPlanar)
}

func TestSelfLoopRejectedByDefault(t *testing.T) {
	b := topograph.NewBuilder()
	v := b.AddVertex()
	_, err := b.AddEdge(v, v, false)
	require.NoError(t, err)
	g := b.Build()

	_, err = planarity.TestPlanarity(g)
	require.ErrorIs(t, err, planarity.ErrBadInput)

	res, err := planarity.TestPlanarity(g, planarity.WithAllowSelfLoops(planarity.SelfLoopIgnore))
	require.NoError(t, err)
	require.True(t, res.IsPlanar)
	require.Len(t, res.Meta.IgnoredSelfLoops, 1)
}

func TestDirectedRejectedByDefault(t *testing.T) {
	b := topograph.NewBuilder()
	u := b.AddVertex()
	v := b.AddVertex()
	_, err := b.AddEdge(u, v, true)
	require.NoError(t, err)
	g := b.Build()

	_, err = planarity.TestPlanarity(g)
	require.ErrorIs(t, err, planarity.ErrBadInput)

	_, err = planarity.TestPlanarity(g, planarity.WithTreatDirectedAsUndirected())
	require.NoError(t, err)
}
