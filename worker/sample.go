// File: sample.go — the "sample" stage: deterministic BFS subsampling
// under the node/edge caps. The sampled graph's new
// VertexIds are assigned in BFS visitation order, so downstream stages see
// a dense 0..k-1 numbering with OriginalNodeIndices recording where each
// came from.
package worker

import (
	"sort"
)

// sampleResult is the sample stage's output before topograph.Graph
// construction.
type sampleResult struct {
	nodes               []string
	edges               [][2]int // sample-local ids, u<v, deduplicated, sorted
	originalNodeIndices []int    // originalNodeIndices[newId] = original index
}

// sampleBFS runs a deterministic BFS from vertex (seed mod |V|), visiting
// neighbours in ascending original-index order, stopping once
// min(HardNodeCap, maxNodes, |V|) vertices have been visited or the
// frontier is exhausted (a disconnected input may yield fewer). Edges are
// truncated to min(HardEdgeCap, maxEdges) after deduplication and
// lexicographic sort on the remapped (sample-local) endpoints.
func sampleBFS(p *Payload, emit Emit, requestID string) sampleResult {
	n := len(p.Nodes)
	if n == 0 {
		return sampleResult{}
	}

	adj := buildOriginalAdjacency(n, p.Edges)

	nodeCap := p.Settings.MaxNodes
	if nodeCap <= 0 || nodeCap > HardNodeCap {
		nodeCap = HardNodeCap
	}
	if n < nodeCap {
		nodeCap = n
	}

	seed := p.Settings.Seed % n
	if seed < 0 {
		seed += n
	}

	visited := make([]bool, n)
	order := make([]int, 0, nodeCap)
	queue := []int{seed}
	visited[seed] = true

	sinceEmit := 0
	for len(queue) > 0 && len(order) < nodeCap {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		sinceEmit++

		if sinceEmit >= sampleEmitEvery {
			emitSampleVisited(emit, requestID, order[len(order)-sinceEmit:])
			sinceEmit = 0
		}

		if len(order) >= nodeCap {
			break
		}
		for _, w := range adj[cur] {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	if sinceEmit > 0 {
		emitSampleVisited(emit, requestID, order[len(order)-sinceEmit:])
	}

	sampleIdx := make([]int, n)
	for i := range sampleIdx {
		sampleIdx[i] = -1
	}
	for newID, orig := range order {
		sampleIdx[orig] = newID
	}

	edgeSet := make(map[[2]int]struct{})
	for _, e := range p.Edges {
		u, v := sampleIdx[e[0]], sampleIdx[e[1]]
		if u < 0 || v < 0 || u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		edgeSet[[2]int{u, v}] = struct{}{}
	}
	edges := make([][2]int, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	edgeCap := p.Settings.MaxEdges
	if edgeCap <= 0 || edgeCap > HardEdgeCap {
		edgeCap = HardEdgeCap
	}
	if len(edges) > edgeCap {
		edges = edges[:edgeCap]
	}

	nodes := make([]string, len(order))
	for newID, orig := range order {
		nodes[newID] = p.Nodes[orig]
	}

	return sampleResult{nodes: nodes, edges: edges, originalNodeIndices: order}
}

// buildOriginalAdjacency builds an ascending-sorted adjacency list over the
// original (un-sampled) vertex indices, used only to drive BFS ordering.
func buildOriginalAdjacency(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			continue
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	return adj
}

func emitSampleVisited(emit Emit, requestID string, originalIdx []int) {
	visited := make([]int, len(originalIdx))
	copy(visited, originalIdx)
	emit.emit(Event{
		Type:      EventPartial,
		RequestID: requestID,
		Partial:   Partial{Kind: PartialSampleVisited, Visited: visited},
	})
}
