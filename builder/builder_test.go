package builder_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/topograph"
	"github.com/katalvlaran/topokit/worker"
	"github.com/stretchr/testify/require"
)

func TestCycleTriangle(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
}

func TestCompleteK5(t *testing.T) {
	g, err := builder.Build(builder.Complete(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 10, g.EdgeCount())
}

func TestCompleteBipartiteK33(t *testing.T) {
	g, err := builder.Build(builder.CompleteBipartite(3, 3))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 9, g.EdgeCount())
}

func TestGrid4x4(t *testing.T) {
	g, err := builder.Build(builder.Grid(4, 4))
	require.NoError(t, err)
	require.Equal(t, 16, g.VertexCount())
	require.Equal(t, 24, g.EdgeCount()) // 2*4*3 internal edges
}

func TestTooFewVertices(t *testing.T) {
	_, err := builder.Build(builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparseDeterministic(t *testing.T) {
	g1, err := builder.Build(builder.RandomSparse(20, 0.3, 42))
	require.NoError(t, err)
	g2, err := builder.Build(builder.RandomSparse(20, 0.3, 42))
	require.NoError(t, err)
	require.Equal(t, g1.ToEdgeList(), g2.ToEdgeList())
}

func TestRandomRegularDeterministicAndRegular(t *testing.T) {
	g1, err := builder.Build(builder.RandomRegular(12, 3, 7))
	require.NoError(t, err)
	g2, err := builder.Build(builder.RandomRegular(12, 3, 7))
	require.NoError(t, err)
	require.Equal(t, g1.ToEdgeList(), g2.ToEdgeList())

	require.Equal(t, 12, g1.VertexCount())
	require.Equal(t, 18, g1.EdgeCount()) // n*d/2 = 12*3/2
	for v := 0; v < g1.VertexCount(); v++ {
		require.Equalf(t, 3, g1.Degree(topograph.VertexId(v)), "vertex %d should have degree 3", v)
	}
}

func TestRandomRegularInvalidDegree(t *testing.T) {
	_, err := builder.Build(builder.RandomRegular(4, 4, 1))
	require.ErrorIs(t, err, builder.ErrInvalidDegree)

	_, err = builder.Build(builder.RandomRegular(4, 3, 1)) // n*d=12 is even, fine; try odd
	require.NoError(t, err)

	_, err = builder.Build(builder.RandomRegular(5, 3, 1)) // n*d=15 is odd
	require.ErrorIs(t, err, builder.ErrInvalidDegree)
}

func TestDatasetAssemblesWorkerPayload(t *testing.T) {
	settings := worker.Settings{
		Mode:     worker.ModePlanarStraight,
		MaxNodes: worker.HardNodeCap,
		MaxEdges: worker.HardEdgeCap,
		Seed:     0,
	}
	payload, err := builder.Dataset("ds-1", "sample-1", settings, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, "ds-1", payload.DatasetID)
	require.Len(t, payload.Nodes, 5)
	require.Len(t, payload.Edges, 5)
	require.Equal(t, worker.ModePlanarStraight, payload.Settings.Mode)
}
