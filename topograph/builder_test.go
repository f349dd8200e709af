package topograph_test

import (
	"testing"

	"github.com/katalvlaran/topokit/topograph"
	"github.com/stretchr/testify/require"
)

func TestBuilder_TriangleIsOrderedAndStable(t *testing.T) {
	b := topograph.NewBuilder()
	a := b.AddVertex()
	c := b.AddVertex()
	d := b.AddVertex()
	_, err := b.AddEdge(a, c, false)
	require.NoError(t, err)
	_, err = b.AddEdge(c, d, false)
	require.NoError(t, err)
	_, err = b.AddEdge(d, a, false)
	require.NoError(t, err)

	g1 := b.Build()
	g2 := b.Build()

	require.Equal(t, 3, g1.VertexCount())
	require.Equal(t, 3, g1.EdgeCount())
	require.Equal(t, g1.ToEdgeList(), g2.ToEdgeList())

	// adjacency must preserve insertion order at every vertex
	adjA := g1.Adjacency(a)
	require.Len(t, adjA, 2)
	require.Equal(t, c, adjA[0].To)
	require.Equal(t, d, adjA[1].To)
}

func TestBuilder_AddEdgeRejectsInvalidEndpoint(t *testing.T) {
	b := topograph.NewBuilder()
	v := b.AddVertex()
	_, err := b.AddEdge(v, topograph.VertexId(7), false)
	require.ErrorIs(t, err, topograph.ErrBadInput)
}

func TestBuilder_SelfLoopContributesTwoIncidences(t *testing.T) {
	b := topograph.NewBuilder()
	v := b.AddVertex()
	_, err := b.AddEdge(v, v, false)
	require.NoError(t, err)

	g := b.Build()
	require.Len(t, g.Adjacency(v), 2)
	require.Len(t, g.SelfLoopEdges(), 1)
}

func TestJSONRoundTrip(t *testing.T) {
	b := topograph.NewBuilder()
	x := b.AddVertex(topograph.StringLabel("x"))
	y := b.AddVertex(topograph.NumberLabel(2))
	_, err := b.AddEdge(x, y, true)
	require.NoError(t, err)
	g := b.Build()

	data, err := g.ToJSON()
	require.NoError(t, err)

	g2, err := topograph.FromJSON(data)
	require.NoError(t, err)
	require.Equal(t, g.ToEdgeList(), g2.ToEdgeList())
	require.Equal(t, g.Label(x).String(), g2.Label(x).String())
	require.Equal(t, g.Label(y).String(), g2.Label(y).String())
}

func TestFromEdgeList(t *testing.T) {
	g, err := topograph.FromEdgeList(3, []topograph.EdgeTuple{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.Len(t, g.Neighbors(0), 2)
}
