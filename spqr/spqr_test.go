package spqr_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/spqr"
	"github.com/katalvlaran/topokit/topograph"
	"github.com/stretchr/testify/require"
)

func countKinds(t *spqr.Tree) map[string]int {
	out := make(map[string]int)
	for _, n := range t.Nodes {
		out[n.Kind.String()]++
	}
	return out
}

func TestDecomposeSafe_TriangleIsSingleSNode(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)

	tree, err := spqr.DecomposeSafe(g)
	require.NoError(t, err)
	require.NoError(t, spqr.Validate(tree))

	counts := countKinds(tree)
	require.Equal(t, 1, counts["S"])
	require.Equal(t, 3, counts["Q"])
}

func TestDecomposeSafe_K4IsSingleRNode(t *testing.T) {
	g, err := builder.Build(builder.Complete(4))
	require.NoError(t, err)

	tree, err := spqr.DecomposeSafe(g)
	require.NoError(t, err)
	require.NoError(t, spqr.Validate(tree))

	counts := countKinds(tree)
	require.Equal(t, 1, counts["R"])
	require.Equal(t, 6, counts["Q"]) // K4 has 6 edges
}

// buildTwoTrianglesSharingAnEdge constructs vertices {u,v,a,b} with edges
// u-v, u-a, a-v, u-b, b-v: two triangles glued along edge u-v, the
// textbook example of a P node splitting off two S-node series paths.
func buildTwoTrianglesSharingAnEdge(t *testing.T) *topograph.Graph {
	t.Helper()
	b := topograph.NewBuilder()
	u := b.AddVertex()
	v := b.AddVertex()
	a := b.AddVertex()
	bb := b.AddVertex()
	_, err := b.AddEdge(u, v, false)
	require.NoError(t, err)
	_, err = b.AddEdge(u, a, false)
	require.NoError(t, err)
	_, err = b.AddEdge(a, v, false)
	require.NoError(t, err)
	_, err = b.AddEdge(u, bb, false)
	require.NoError(t, err)
	_, err = b.AddEdge(bb, v, false)
	require.NoError(t, err)
	return b.Build()
}

func TestDecomposeSafe_TwoTrianglesSharingAnEdge(t *testing.T) {
	g := buildTwoTrianglesSharingAnEdge(t)

	tree, err := spqr.DecomposeSafe(g)
	require.NoError(t, err)
	require.NoError(t, spqr.Validate(tree))

	counts := countKinds(tree)
	require.Equal(t, 1, counts["P"])
	require.Equal(t, 2, counts["S"])
	require.Equal(t, 5, counts["Q"])
}

func TestDecomposeAll_ReportsArticulationPoints(t *testing.T) {
	// two triangles sharing only a vertex: not biconnected as a whole.
	b := topograph.NewBuilder()
	s := b.AddVertex()
	a := b.AddVertex()
	c := b.AddVertex()
	d := b.AddVertex()
	_, err := b.AddEdge(s, a, false)
	require.NoError(t, err)
	_, err = b.AddEdge(a, c, false)
	require.NoError(t, err)
	_, err = b.AddEdge(c, s, false)
	require.NoError(t, err)
	_, err = b.AddEdge(s, d, false)
	require.NoError(t, err)
	g := b.Build()
	_ = d

	forest, err := spqr.DecomposeAll(g)
	require.NoError(t, err)
	require.Len(t, forest.Trees, 2)
	require.Contains(t, forest.ArticulationPoints, s)
}
