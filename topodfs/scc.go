// File: scc.go — Tarjan's strongly-connected-components algorithm,
// iterative (explicit stack), following only outgoing adjacency.
package topodfs

import "github.com/katalvlaran/topokit/topograph"

// SCCResult is the output of SCCTarjan: the graph's strongly-connected
// components in the order they were closed, plus a lookup from vertex to
// its component index.
type SCCResult struct {
	// Components holds one slice per SCC, each vertex list in reverse
	// discovery order within that component (the component's root last).
	Components [][]topograph.VertexId
	// ComponentOf maps VertexId -> index into Components.
	ComponentOf []int
}

// tarjanFrame is one explicit-stack frame of the iterative Tarjan walk.
type tarjanFrame struct {
	v    topograph.VertexId
	iter int // cursor into v's out-adjacency, resumed on re-entry
}

// SCCTarjan computes the strongly-connected components of g using Tarjan's
// algorithm, treating each edge as directed if g.AnyDirected() marks it so
// and undirected edges as bidirectional. The condensation (one vertex per
// component, an edge for every inter-component edge of g) is acyclic; this
// is a property every caller may rely on and that the package's tests
// verify directly.
//
// Complexity: O(V+E) time, O(V) space for the explicit stack and indices.
func SCCTarjan(g *topograph.Graph) *SCCResult {
	n := g.VertexCount()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	var vstack []topograph.VertexId // Tarjan's own vertex stack
	var nextIndex int
	res := &SCCResult{ComponentOf: make([]int, n)}
	for i := range res.ComponentOf {
		res.ComponentOf[i] = -1
	}

	var callStack []tarjanFrame

	for start := 0; start < n; start++ {
		if index[start] != -1 {
			continue
		}
		callStack = append(callStack[:0], tarjanFrame{v: topograph.VertexId(start), iter: 0})
		index[start] = nextIndex
		low[start] = nextIndex
		nextIndex++
		vstack = append(vstack, topograph.VertexId(start))
		onStack[start] = true

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			adj := outNeighbors(g, top.v)
			advanced := false
			for top.iter < len(adj) {
				w := adj[top.iter]
				top.iter++
				if index[w] == -1 {
					index[w] = nextIndex
					low[w] = nextIndex
					nextIndex++
					vstack = append(vstack, w)
					onStack[w] = true
					callStack = append(callStack, tarjanFrame{v: w, iter: 0})
					advanced = true
					break
				} else if onStack[w] {
					if index[w] < low[top.v] {
						low[top.v] = index[w]
					}
				}
			}
			if advanced {
				continue
			}

			// top.v is fully explored: pop it, propagate low to parent, and
			// if it is a component root, peel the component off vstack.
			v := top.v
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}
			if low[v] == index[v] {
				compIdx := len(res.Components)
				var comp []topograph.VertexId
				for {
					w := vstack[len(vstack)-1]
					vstack = vstack[:len(vstack)-1]
					onStack[w] = false
					res.ComponentOf[w] = compIdx
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				res.Components = append(res.Components, comp)
			}
		}
	}

	return res
}

// outNeighbors returns the "out" neighbors of v: for directed incidences
// only DirOut counts; undirected incidences always count.
func outNeighbors(g *topograph.Graph, v topograph.VertexId) []topograph.VertexId {
	adj := g.Adjacency(v)
	out := make([]topograph.VertexId, 0, len(adj))
	for _, inc := range adj {
		if inc.Dir != topograph.DirIn {
			out = append(out, inc.To)
		}
	}
	return out
}
