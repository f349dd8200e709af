package topodfs_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/topodfs"
	"github.com/katalvlaran/topokit/topograph"
	"github.com/stretchr/testify/require"
)

// buildTwoTrianglesSharingAVertex builds edges (0,1),(1,2),(2,0),(2,3),(3,4),(4,2):
// two triangles sharing vertex 2.
func buildTwoTrianglesSharingAVertex(t *testing.T) *topograph.Graph {
	t.Helper()
	b := topograph.NewBuilder()
	vs := make([]topograph.VertexId, 5)
	for i := range vs {
		vs[i] = b.AddVertex()
	}
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}}
	for _, p := range pairs {
		_, err := b.AddEdge(vs[p[0]], vs[p[1]], false)
		require.NoError(t, err)
	}
	return b.Build()
}

func TestBiconnected_TwoTrianglesSharingAVertex(t *testing.T) {
	g := buildTwoTrianglesSharingAVertex(t)
	res, err := topodfs.BiconnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, res.Blocks, 2)
	require.Equal(t, []topograph.VertexId{2}, res.ArticulationPoints)
	require.Empty(t, res.Bridges)

	tree := topodfs.BuildBCTree(g, res)
	require.Len(t, tree.BlockNodes, 2)
	require.Len(t, tree.CutNodes, 1)
}

func TestBiconnected_BridgeInPath(t *testing.T) {
	g, err := builder.Build(builder.Path(3)) // 0-1-2, single path: both edges are bridges
	require.NoError(t, err)
	res, err := topodfs.BiconnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, res.Bridges, 2)
	require.ElementsMatch(t, []topograph.VertexId{1}, res.ArticulationPoints)
}

func TestBiconnected_RejectsDirectedByDefault(t *testing.T) {
	b := topograph.NewBuilder()
	u := b.AddVertex()
	v := b.AddVertex()
	_, err := b.AddEdge(u, v, true)
	require.NoError(t, err)
	g := b.Build()

	_, err = topodfs.BiconnectedComponents(g)
	require.ErrorIs(t, err, topodfs.ErrBadInput)

	_, err = topodfs.BiconnectedComponents(g, topodfs.WithTreatDirectedAsUndirected())
	require.NoError(t, err)
}

func TestBiconnected_SelfLoopFormsOwnBlock(t *testing.T) {
	b := topograph.NewBuilder()
	v := b.AddVertex()
	w := b.AddVertex()
	_, err := b.AddEdge(v, v, false)
	require.NoError(t, err)
	_, err = b.AddEdge(v, w, false)
	require.NoError(t, err)
	g := b.Build()

	_, err = topodfs.BiconnectedComponents(g)
	require.ErrorIs(t, err, topodfs.ErrBadInput)

	res, err := topodfs.BiconnectedComponents(g, topodfs.WithAllowSelfLoops(topodfs.SelfLoopIgnore))
	require.NoError(t, err)
	require.Len(t, res.Blocks, 2)
	require.Empty(t, res.ArticulationPoints)
}

func TestSCCTarjan_CondensationIsAcyclic(t *testing.T) {
	b := topograph.NewBuilder()
	vs := make([]topograph.VertexId, 4)
	for i := range vs {
		vs[i] = b.AddVertex()
	}
	// 0<->1 (cycle), 1->2, 2->3
	mustEdge := func(u, v topograph.VertexId, directed bool) {
		_, err := b.AddEdge(u, v, directed)
		require.NoError(t, err)
	}
	mustEdge(vs[0], vs[1], true)
	mustEdge(vs[1], vs[0], true)
	mustEdge(vs[1], vs[2], true)
	mustEdge(vs[2], vs[3], true)
	g := b.Build()

	res := topodfs.SCCTarjan(g)
	require.Len(t, res.Components, 3)
	require.Equal(t, res.ComponentOf[0], res.ComponentOf[1])
}
