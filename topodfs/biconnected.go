// File: biconnected.go — iterative biconnected-component decomposition,
// articulation points, and bridges, via the classic disc/low edge-stack
// algorithm run over an explicit DFS stack.
package topodfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topokit/topograph"
)

// SelfLoopPolicy controls how BiconnectedComponents treats self-loop edges.
type SelfLoopPolicy int

const (
	// SelfLoopReject fails with ErrBadInput if any self-loop is present.
	SelfLoopReject SelfLoopPolicy = iota
	// SelfLoopIgnore tolerates self-loops: each forms its own single-edge
	// block and does not participate in disc/low traversal.
	SelfLoopIgnore
)

// BCOptions configures BiconnectedComponents.
type BCOptions struct {
	// TreatDirectedAsUndirected, if false (default), rejects any graph
	// carrying a directed edge with ErrBadInput. If true, direction is
	// ignored for the purpose of this analysis.
	TreatDirectedAsUndirected bool
	// AllowSelfLoops selects the self-loop policy (default SelfLoopReject).
	AllowSelfLoops SelfLoopPolicy
}

// BCOption is a functional option for BCOptions.
type BCOption func(*BCOptions)

// WithTreatDirectedAsUndirected enables coercion of directed edges to
// undirected for this analysis.
func WithTreatDirectedAsUndirected() BCOption {
	return func(o *BCOptions) { o.TreatDirectedAsUndirected = true }
}

// WithAllowSelfLoops sets the self-loop policy.
func WithAllowSelfLoops(p SelfLoopPolicy) BCOption {
	return func(o *BCOptions) { o.AllowSelfLoops = p }
}

func defaultBCOptions() BCOptions {
	return BCOptions{TreatDirectedAsUndirected: false, AllowSelfLoops: SelfLoopReject}
}

// BCResult is the output of BiconnectedComponents.
type BCResult struct {
	// Blocks holds one edge-id set per biconnected block, in the order
	// blocks were closed.
	Blocks [][]topograph.EdgeId
	// ArticulationPoints lists vertices whose removal increases the number
	// of connected components, in ascending VertexId order.
	ArticulationPoints []topograph.VertexId
	// Bridges lists edges whose removal increases the number of connected
	// components, in ascending EdgeId order.
	Bridges []topograph.EdgeId
	// EdgeToBlock maps every edge id to the index of the block (into
	// Blocks) that contains it.
	EdgeToBlock map[topograph.EdgeId]int
}

type bccFrame struct {
	v          topograph.VertexId
	parentEdge topograph.EdgeId // -1 if v is a DFS root
	iter       int
	children   int
}

// BiconnectedComponents decomposes g into biconnected blocks, articulation
// points, and bridges.
//
// Errors: ErrBadInput if g carries a directed edge and
// TreatDirectedAsUndirected is false, or a self-loop and AllowSelfLoops is
// SelfLoopReject.
//
// Complexity: O(V+E) time, O(V+E) space for the edge stack and explicit DFS
// stack.
func BiconnectedComponents(g *topograph.Graph, opts ...BCOption) (*BCResult, error) {
	o := defaultBCOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if g.AnyDirected() && !o.TreatDirectedAsUndirected {
		return nil, fmt.Errorf("topodfs: BiconnectedComponents: directed edge present: %w", ErrBadInput)
	}

	selfLoops := g.SelfLoopEdges()
	if len(selfLoops) > 0 && o.AllowSelfLoops == SelfLoopReject {
		return nil, fmt.Errorf("topodfs: BiconnectedComponents: self-loop edge %d present: %w", selfLoops[0], ErrBadInput)
	}
	isSelfLoop := make(map[topograph.EdgeId]bool, len(selfLoops))
	for _, e := range selfLoops {
		isSelfLoop[e] = true
	}

	n := g.VertexCount()
	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	processedEdge := make([]bool, g.EdgeCount())

	res := &BCResult{EdgeToBlock: make(map[topograph.EdgeId]int, g.EdgeCount())}
	artSet := make(map[topograph.VertexId]bool)

	// Self-loops each form their own singleton block, independent of the
	// disc/low traversal below (a self-loop can be neither a bridge nor
	// change connectivity, so it must not perturb articulation detection).
	for _, e := range selfLoops {
		idx := len(res.Blocks)
		res.Blocks = append(res.Blocks, []topograph.EdgeId{e})
		res.EdgeToBlock[e] = idx
	}

	var edgeStack []topograph.EdgeId
	var timer int

	closeBlockThrough := func(throughEdge topograph.EdgeId) {
		idx := len(res.Blocks)
		var block []topograph.EdgeId
		for {
			top := edgeStack[len(edgeStack)-1]
			edgeStack = edgeStack[:len(edgeStack)-1]
			block = append(block, top)
			res.EdgeToBlock[top] = idx
			if top == throughEdge {
				break
			}
		}
		res.Blocks = append(res.Blocks, block)
	}

	for start := 0; start < n; start++ {
		if disc[start] != -1 {
			continue
		}
		disc[start] = timer
		low[start] = timer
		timer++
		stack := []bccFrame{{v: topograph.VertexId(start), parentEdge: -1, iter: 0, children: 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj := g.Adjacency(top.v)
			descended := false

			for top.iter < len(adj) {
				inc := adj[top.iter]
				top.iter++

				if isSelfLoop[inc.Edge] {
					continue
				}
				if inc.Edge == top.parentEdge {
					continue
				}
				if processedEdge[inc.Edge] {
					continue
				}

				w := inc.To
				if disc[w] == -1 {
					processedEdge[inc.Edge] = true
					edgeStack = append(edgeStack, inc.Edge)
					disc[w] = timer
					low[w] = timer
					timer++
					top.children++
					stack = append(stack, bccFrame{v: w, parentEdge: inc.Edge, iter: 0, children: 0})
					descended = true
					break
				}

				// Back edge to an already-discovered vertex.
				processedEdge[inc.Edge] = true
				if disc[w] < disc[top.v] {
					edgeStack = append(edgeStack, inc.Edge)
					if disc[w] < low[top.v] {
						low[top.v] = disc[w]
					}
				}
			}

			if descended {
				continue
			}

			// top.v fully explored: pop it and fold into its parent.
			v := top.v
			parentEdge := top.parentEdge
			children := top.children
			stack = stack[:len(stack)-1]

			if len(stack) == 0 {
				if children > 1 {
					artSet[v] = true
				}
				continue
			}

			parent := &stack[len(stack)-1]
			if low[v] < low[parent.v] {
				low[parent.v] = low[v]
			}
			if low[v] >= disc[parent.v] {
				closeBlockThrough(parentEdge)
				if parent.parentEdge != -1 || len(stack) > 1 {
					artSet[parent.v] = true
				}
			}
			if low[v] > disc[parent.v] {
				res.Bridges = append(res.Bridges, parentEdge)
			}
		}
	}

	for v := 0; v < n; v++ {
		if artSet[topograph.VertexId(v)] {
			res.ArticulationPoints = append(res.ArticulationPoints, topograph.VertexId(v))
		}
	}
	sort.Slice(res.Bridges, func(i, j int) bool { return res.Bridges[i] < res.Bridges[j] })

	return res, nil
}
