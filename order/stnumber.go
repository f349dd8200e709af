// File: stnumber.go — st-numbering via the classical DFS + lowpoint
// construction (Even & Tarjan / Lempel-Even-Cederbaum): orient the DFS
// tree rooted at s with the pole edge (s,t) visited first, classify each
// non-root vertex's insertion side relative to its parent from its
// lowpoint, then walk the tree inserting each child immediately before or
// after its parent's current list position.
package order

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/topokit/topodfs"
	"github.com/katalvlaran/topokit/topograph"
)

// StNumbering computes an st-numbering of g relative to the pole edge
// (s,t): a bijection Number: V -> {1,...,n} with Number[s]=1, Number[t]=n,
// such that every other vertex has at least one neighbor numbered lower
// and at least one numbered higher.
//
// Preconditions: g is undirected (or TreatDirectedAsUndirected is used
// upstream — this function itself always treats edges as undirected),
// s and t are joined by a direct edge, and the graph restricted to the
// connected component containing s is biconnected (2-connected); a
// failure of either is reported as ErrBadInput, since no st-numbering
// exists otherwise.
//
// Complexity: O(V+E).
func StNumbering(g *topograph.Graph, s, t topograph.VertexId) (*Numbering, error) {
	if !g.HasVertex(s) || !g.HasVertex(t) || s == t {
		return nil, fmt.Errorf("order: StNumbering: invalid pole pair (%d,%d): %w", s, t, ErrBadInput)
	}
	if !hasEdgeBetween(g, s, t) {
		return nil, fmt.Errorf("order: StNumbering: s and t must be adjacent: %w", ErrBadInput)
	}

	bcc, err := topodfs.BiconnectedComponents(g, topodfs.WithTreatDirectedAsUndirected())
	if err != nil {
		return nil, fmt.Errorf("order: StNumbering: %w", err)
	}
	if len(bcc.ArticulationPoints) > 0 || (len(bcc.Blocks) > 1 && g.EdgeCount() > 0) {
		return nil, fmt.Errorf("order: StNumbering: graph is not biconnected: %w", ErrBadInput)
	}

	n := g.VertexCount()
	dfn := make([]int, n)
	parent := make([]topograph.VertexId, n)
	parentEdge := make([]topograph.EdgeId, n)
	low1 := make([]int, n)
	children := make([][]topograph.VertexId, n)
	for i := range dfn {
		dfn[i] = -1
		parent[i] = -1
		parentEdge[i] = -1
	}

	if err := dfsOrient(g, s, t, dfn, parent, parentEdge, children); err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if dfn[v] == -1 {
			return nil, fmt.Errorf("order: StNumbering: graph is not connected: %w", ErrBadInput)
		}
	}

	computeLow1(g, dfn, parent, low1, children, int(s))

	sign := make([]bool, n) // true = "-" (insert after parent), false = "+" (insert before)
	for v := 0; v < n; v++ {
		if topograph.VertexId(v) == s {
			continue
		}
		sign[v] = low1[v] == dfn[parent[v]]
	}

	l := list.New()
	pos := make(map[topograph.VertexId]*list.Element, n)
	pos[s] = l.PushBack(s)

	pathSearch(s, sign, children, l, pos)

	number := make([]int, n)
	order := make([]topograph.VertexId, 0, n)
	i := 1
	for e := l.Front(); e != nil; e = e.Next() {
		v := e.Value.(topograph.VertexId)
		number[v] = i
		order = append(order, v)
		i++
	}

	if err := validateNumbering(g, number, s, t); err != nil {
		return nil, err
	}

	return &Numbering{Number: number, Order: order}, nil
}

// dfsOrient builds a DFS spanning tree rooted at s, forcing the edge
// (s,t) to be explored first so that t becomes s's first tree child.
func dfsOrient(g *topograph.Graph, s, t topograph.VertexId, dfn []int, parent []topograph.VertexId, parentEdge []topograph.EdgeId, children [][]topograph.VertexId) error {
	type frame struct {
		v    topograph.VertexId
		adj  []topograph.Incidence
		iter int
	}

	timer := 0
	visit := func(v topograph.VertexId) []topograph.Incidence {
		adj := g.Adjacency(v)
		if v == s {
			adj = reorderFirst(adj, t)
		}
		return adj
	}

	dfn[s] = timer
	timer++
	stack := []frame{{v: s, adj: visit(s)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		descended := false
		for top.iter < len(top.adj) {
			inc := top.adj[top.iter]
			top.iter++
			if inc.Edge == parentEdge[top.v] {
				continue
			}
			w := inc.To
			if dfn[w] == -1 {
				dfn[w] = timer
				timer++
				parent[w] = top.v
				parentEdge[w] = inc.Edge
				children[top.v] = append(children[top.v], w)
				stack = append(stack, frame{v: w, adj: visit(w)})
				descended = true
				break
			}
		}
		if !descended {
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}

// reorderFirst returns adj with the incidence reaching target moved to
// index 0, leaving the rest in their original relative order.
func reorderFirst(adj []topograph.Incidence, target topograph.VertexId) []topograph.Incidence {
	out := make([]topograph.Incidence, 0, len(adj))
	var first *topograph.Incidence
	for i := range adj {
		if first == nil && adj[i].To == target {
			cp := adj[i]
			first = &cp
			continue
		}
		out = append(out, adj[i])
	}
	if first == nil {
		return adj
	}
	return append([]topograph.Incidence{*first}, out...)
}

// computeLow1 fills low1 bottom-up via an explicit postorder walk of the
// DFS tree built by dfsOrient, folding in each vertex's back edges.
func computeLow1(g *topograph.Graph, dfn []int, parent []topograph.VertexId, low1 []int, children [][]topograph.VertexId, root int) {
	n := len(dfn)
	order := make([]topograph.VertexId, 0, n)
	var stack []topograph.VertexId
	stack = append(stack, topograph.VertexId(root))
	visited := make([]bool, n)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)
		stack = append(stack, children[v]...)
	}

	for v := range low1 {
		low1[v] = dfn[v]
	}
	// process in reverse discovery order so every child is finalized
	// before its parent folds it in.
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		for _, inc := range g.Adjacency(v) {
			if dfn[inc.To] < low1[v] && inc.To != parent[v] {
				low1[v] = dfn[inc.To]
			}
		}
		for _, c := range children[v] {
			if low1[c] < low1[v] {
				low1[v] = low1[c]
			}
		}
	}
}

// pathSearch walks the DFS tree from v, inserting each child relative to
// its parent's current list position per its precomputed sign.
func pathSearch(root topograph.VertexId, sign []bool, children [][]topograph.VertexId, l *list.List, pos map[topograph.VertexId]*list.Element) {
	stack := []topograph.VertexId{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parentElem := pos[v]
		for _, c := range children[v] {
			var elem *list.Element
			if sign[c] {
				elem = l.InsertAfter(c, parentElem)
			} else {
				elem = l.InsertBefore(c, parentElem)
			}
			pos[c] = elem
			stack = append(stack, c)
		}
	}
}

func hasEdgeBetween(g *topograph.Graph, u, v topograph.VertexId) bool {
	for _, inc := range g.Adjacency(u) {
		if inc.To == v {
			return true
		}
	}
	return false
}

func validateNumbering(g *topograph.Graph, number []int, s, t topograph.VertexId) error {
	for v := 0; v < len(number); v++ {
		vid := topograph.VertexId(v)
		if vid == s || vid == t {
			continue
		}
		hasLower, hasHigher := false, false
		for _, inc := range g.Adjacency(vid) {
			if number[inc.To] < number[v] {
				hasLower = true
			}
			if number[inc.To] > number[v] {
				hasHigher = true
			}
		}
		if !hasLower || !hasHigher {
			return fmt.Errorf("order: StNumbering: vertex %d has no valid numbering (graph not biconnected): %w", v, ErrBadInput)
		}
	}
	return nil
}
