package mcflow_test

import (
	"testing"

	"github.com/katalvlaran/topokit/mcflow"
	"github.com/stretchr/testify/require"
)

func TestSolve_SimpleSupplyDemand(t *testing.T) {
	// 0 -> 1 -> 2, node0 supplies 5, node2 demands 5, costs 1 and 2 per unit.
	in := mcflow.Input{
		NodeCount: 3,
		Arcs: []mcflow.Arc{
			{From: 0, To: 1, Upper: 10, Cost: 1},
			{From: 1, To: 2, Upper: 10, Cost: 2},
		},
		Demands: []int{5, 0, -5},
	}
	res, err := mcflow.Solve(in)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, 5, res.Flow[0])
	require.Equal(t, 5, res.Flow[1])
	require.InDelta(t, 5*1+5*2, res.TotalCost, 1e-9)
}

func TestSolve_PrefersCheaperParallelPath(t *testing.T) {
	// two parallel paths 0->1->3 (cost 1 each) and 0->2->3 (cost 5 each);
	// supply 3 at node0 / demand 3 at node3 should all route via the cheap path.
	in := mcflow.Input{
		NodeCount: 4,
		Arcs: []mcflow.Arc{
			{From: 0, To: 1, Upper: 3, Cost: 1},
			{From: 1, To: 3, Upper: 3, Cost: 1},
			{From: 0, To: 2, Upper: 3, Cost: 5},
			{From: 2, To: 3, Upper: 3, Cost: 5},
		},
		Demands: []int{3, 0, 0, -3},
	}
	res, err := mcflow.Solve(in)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, 3, res.Flow[0])
	require.Equal(t, 3, res.Flow[1])
	require.Equal(t, 0, res.Flow[2])
	require.Equal(t, 0, res.Flow[3])
}

func TestSolve_LowerBoundForcesMinimumFlow(t *testing.T) {
	in := mcflow.Input{
		NodeCount: 2,
		Arcs: []mcflow.Arc{
			{From: 0, To: 1, Lower: 2, Upper: 5, Cost: 1},
		},
		Demands: []int{2, -2},
	}
	res, err := mcflow.Solve(in)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, 2, res.Flow[0])
}

func TestSolve_InfeasibleWhenCapacityTooLow(t *testing.T) {
	in := mcflow.Input{
		NodeCount: 2,
		Arcs: []mcflow.Arc{
			{From: 0, To: 1, Upper: 1, Cost: 1},
		},
		Demands: []int{5, -5},
	}
	res, err := mcflow.Solve(in)
	require.NoError(t, err)
	require.False(t, res.Feasible)
}
