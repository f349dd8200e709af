// File: report.go — the "report" stage: biconnected decomposition,
// articulation points, bridges, and an SPQR type-count summary over the
// sampled graph, carrying full block/articulation/bridge lists rather
// than just counts.
package worker

import (
	"github.com/katalvlaran/topokit/spqr"
	"github.com/katalvlaran/topokit/topodfs"
	"github.com/katalvlaran/topokit/topograph"
)

// buildReport runs topodfs.BiconnectedComponents and spqr.DecomposeAll over
// g, coercing directed edges to undirected and ignoring self-loops exactly
// as the planarity stage does, so the report reflects the same sanitised
// view of the graph.
func buildReport(g *topograph.Graph, faces *FacesInfo) Report {
	rep := Report{Faces: faces}

	bcc, err := topodfs.BiconnectedComponents(g,
		topodfs.WithTreatDirectedAsUndirected(),
		topodfs.WithAllowSelfLoops(topodfs.SelfLoopIgnore))
	if err != nil {
		return rep
	}
	rep.Biconnected = BiconnectedInfo{
		Blocks:             toIntBlocks(bcc.Blocks),
		ArticulationPoints: toIntVertices(bcc.ArticulationPoints),
		Bridges:            toIntEdges(bcc.Bridges),
	}

	forest, err := spqr.DecomposeAll(g,
		spqr.WithTreatDirectedAsUndirected(),
		spqr.WithAllowSelfLoops(topodfs.SelfLoopIgnore))
	if err != nil {
		return rep
	}
	var counts SPQRCounts
	nodeCount := 0
	for _, tree := range forest.Trees {
		nodeCount += len(tree.Nodes)
		for _, nd := range tree.Nodes {
			switch nd.Kind {
			case spqr.SNode:
				counts.S++
			case spqr.PNode:
				counts.P++
			case spqr.RNode:
				counts.R++
			case spqr.QNode:
				counts.Q++
			}
		}
	}
	rep.SPQR = &SPQRInfo{Nodes: nodeCount, Counts: counts}

	return rep
}

func toIntBlocks(blocks [][]topograph.EdgeId) [][]int {
	out := make([][]int, len(blocks))
	for i, b := range blocks {
		ids := make([]int, len(b))
		for j, e := range b {
			ids[j] = int(e)
		}
		out[i] = ids
	}
	return out
}

func toIntVertices(vs []topograph.VertexId) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = int(v)
	}
	return out
}

func toIntEdges(es []topograph.EdgeId) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = int(e)
	}
	return out
}
