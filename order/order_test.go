package order_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/order"
	"github.com/katalvlaran/topokit/topograph"
	"github.com/stretchr/testify/require"
)

func TestStNumbering_Triangle(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)

	num, err := order.StNumbering(g, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, num.Number[0])
	require.Equal(t, 3, num.Number[1])
	require.Len(t, num.Order, 3)
}

func TestStNumbering_Grid(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)

	num, err := order.StNumbering(g, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, num.Number[0])
	require.Equal(t, 9, num.Number[1])

	seen := make(map[int]bool, 9)
	for _, n := range num.Number {
		require.False(t, seen[n], "duplicate number %d", n)
		seen[n] = true
	}
}

func TestStNumbering_RejectsNonAdjacentPoles(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)

	_, err = order.StNumbering(g, 0, 8)
	require.ErrorIs(t, err, order.ErrBadInput)
}

func TestBipolarOrientation_MonotonicInNumbering(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)

	num, err := order.StNumbering(g, 0, 1)
	require.NoError(t, err)

	o := order.BipolarOrientation(g, num)
	for _, rec := range g.Edges() {
		from, to := o.From[rec.ID], o.To[rec.ID]
		require.Less(t, num.Number[from], num.Number[to])
	}

	// s must be a pure source, t a pure sink.
	for _, rec := range g.Edges() {
		if o.To[rec.ID] == topograph.VertexId(0) {
			t.Fatalf("s must have no incoming oriented edge, got edge %d into s", rec.ID)
		}
		if o.From[rec.ID] == topograph.VertexId(1) {
			t.Fatalf("t must have no outgoing oriented edge, got edge %d out of t", rec.ID)
		}
	}
}
