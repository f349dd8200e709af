// File: dataset.go — Dataset: assembles a worker.Payload straight from a
// deterministic Constructor chain, so a caller can go from "I want a 4x4
// grid" to a ready worker.ComputeSync argument without hand-building the
// wire-shaped Nodes/Edges arrays itself.
package builder

import (
	"fmt"

	"github.com/katalvlaran/topokit/topograph"
	"github.com/katalvlaran/topokit/worker"
)

// Dataset builds a graph from cons exactly as Build does, then renders it
// into a worker.Payload: Nodes holds each vertex's Label.String() (empty
// string for an unlabeled vertex, matching Label.String's own fallback),
// and Edges holds every edge's canonical (U, V) pair as a plain [2]int,
// dropping directedness (the worker pipeline treats its sampled input as
// undirected throughout). datasetID and sampleID are copied verbatim into
// the payload; settings is copied as given (callers set Mode, caps, Seed,
// etc. themselves).
func Dataset(datasetID, sampleID string, settings worker.Settings, cons ...Constructor) (*worker.Payload, error) {
	g, err := Build(cons...)
	if err != nil {
		return nil, fmt.Errorf("builder: Dataset: %w", err)
	}

	nodes := make([]string, g.VertexCount())
	for v := 0; v < g.VertexCount(); v++ {
		nodes[v] = g.Label(topograph.VertexId(v)).String()
	}

	edges := make([][2]int, 0, g.EdgeCount())
	for _, rec := range g.Edges() {
		edges = append(edges, [2]int{int(rec.U), int(rec.V)})
	}

	return &worker.Payload{
		DatasetID: datasetID,
		SampleID:  sampleID,
		Nodes:     nodes,
		Edges:     edges,
		Settings:  settings,
	}, nil
}
