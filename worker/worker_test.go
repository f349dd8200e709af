package worker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topokit/worker"
)

func nodeLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func payloadFor(n int, edges [][2]int, mode worker.Mode) *worker.Payload {
	return &worker.Payload{
		DatasetID: "ds-" + string(mode),
		SampleID:  "sample-1",
		Nodes:     nodeLabels(n),
		Edges:     edges,
		Settings: worker.Settings{
			Mode:     mode,
			MaxNodes: worker.HardNodeCap,
			MaxEdges: worker.HardEdgeCap,
			Seed:     0,
		},
	}
}

func collect(events *[]worker.Event) worker.Emit {
	return func(ev worker.Event) { *events = append(*events, ev) }
}

func TestComputeSyncTriangleIsPlanarStraightLine(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	payload := payloadFor(3, edges, worker.ModePlanarStraight)

	var events []worker.Event
	res, err := worker.ComputeSync(context.Background(), "req-triangle", payload, collect(&events))
	require.NoError(t, err)
	require.True(t, res.Planarity.IsPlanar)
	require.Equal(t, worker.ModePlanarStraight, res.Layout.Mode)
	require.Len(t, res.Layout.Positions, 3)
	require.Equal(t, 0, res.Layout.Crossings)

	var sawResult bool
	for _, ev := range events {
		if ev.Type == worker.EventResult {
			sawResult = true
		}
	}
	require.True(t, sawResult)
}

func TestComputeSyncK5IsNonplanarWithWitness(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	payload := payloadFor(5, edges, worker.ModePlanarStraight)
	payload.Settings.ShowWitness = true

	res, err := worker.ComputeSync(context.Background(), "req-k5", payload, nil)
	require.NoError(t, err)
	require.False(t, res.Planarity.IsPlanar)
	require.NotNil(t, res.Planarity.Witness)
	require.Equal(t, "K5", res.Planarity.Witness.Kind)
	// nonplanar input downgrades a planar-only request to its
	// planarization counterpart.
	require.Equal(t, worker.ModePlanarizationStraight, res.Layout.Mode)
	require.Len(t, res.Layout.Positions, 5)
}

func TestComputeSyncK33IsNonplanarWithWitness(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	payload := payloadFor(6, edges, worker.ModeOrthogonal)

	res, err := worker.ComputeSync(context.Background(), "req-k33", payload, nil)
	require.NoError(t, err)
	require.False(t, res.Planarity.IsPlanar)
	require.Equal(t, "K33", res.Planarity.Witness.Kind)
	require.Equal(t, worker.ModePlanarizationOrthog, res.Layout.Mode)
}

func TestComputeSyncGridIsPlanarOrthogonal(t *testing.T) {
	const rows, cols = 4, 4
	idx := func(r, c int) int { return r*cols + c }
	var edges [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, [2]int{idx(r, c), idx(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{idx(r, c), idx(r+1, c)})
			}
		}
	}
	payload := payloadFor(rows*cols, edges, worker.ModeOrthogonal)

	res, err := worker.ComputeSync(context.Background(), "req-grid", payload, nil)
	require.NoError(t, err)
	require.True(t, res.Planarity.IsPlanar)
	require.Equal(t, worker.ModeOrthogonal, res.Layout.Mode)
	require.Len(t, res.Layout.Positions, rows*cols)
}

func TestComputeSyncSquareWithDiagonalIsPlanar(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	payload := payloadFor(4, edges, worker.ModePlanarStraight)

	res, err := worker.ComputeSync(context.Background(), "req-square-diag", payload, nil)
	require.NoError(t, err)
	require.True(t, res.Planarity.IsPlanar)
	require.NotNil(t, res.Report.Faces)
	require.Equal(t, 3, res.Report.Faces.Count) // Euler: V-E+F=2, 4-5+F=2 => F=3
	require.Len(t, res.Report.Biconnected.Blocks, 1)
	require.Empty(t, res.Report.Biconnected.ArticulationPoints)
}

func TestComputeSyncTwoTrianglesSharingVertex(t *testing.T) {
	// 0-1-2 and 2-3-4, sharing vertex 2 as a cut vertex.
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}}
	payload := payloadFor(5, edges, worker.ModePlanarStraight)

	res, err := worker.ComputeSync(context.Background(), "req-bowtie", payload, nil)
	require.NoError(t, err)
	require.True(t, res.Planarity.IsPlanar)
	require.Contains(t, res.Report.Biconnected.ArticulationPoints, 2)
	require.Len(t, res.Report.Biconnected.Blocks, 2)
}

func TestComputeSyncIsDeterministic(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	payload := payloadFor(4, edges, worker.ModePlanarStraight)

	res1, err := worker.ComputeSync(context.Background(), "req-det-1", payload, nil)
	require.NoError(t, err)
	res2, err := worker.ComputeSync(context.Background(), "req-det-2", payload, nil)
	require.NoError(t, err)

	require.Equal(t, res1.Layout.Positions, res2.Layout.Positions)
	require.Equal(t, res1.Layout.EdgeRoutes, res2.Layout.EdgeRoutes)
	require.Equal(t, res1.Layout.Crossings, res2.Layout.Crossings)
}

func TestComputeSyncCancellationBeforeStart(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	payload := payloadFor(3, edges, worker.ModePlanarStraight)

	worker.Cancel("req-cancel-early")
	var events []worker.Event
	res, err := worker.ComputeSync(context.Background(), "req-cancel-early", payload, collect(&events))
	require.Error(t, err)
	require.Nil(t, res)

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	require.Equal(t, worker.EventError, last.Type)
	require.Equal(t, "Computation cancelled", last.Error.Message)
}

func TestComputeSyncPathGraphIsPlanar(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	payload := payloadFor(5, edges, worker.ModePlanarStraight)

	res, err := worker.ComputeSync(context.Background(), "req-path", payload, nil)
	require.NoError(t, err)
	require.Equal(t, 5, res.SampledStats.Nodes)
	require.True(t, res.Planarity.IsPlanar)
	require.Len(t, res.Layout.Positions, 5)
}
