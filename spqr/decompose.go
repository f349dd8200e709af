// File: decompose.go — iterative split-pair search building an SPQR
// tree from a biconnected component's edge set, a quadratic-ish
// construction used in place of linear Hopcroft-Tarjan triconnectivity.
package spqr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topokit/topograph"
)

type pending struct {
	vs []topograph.VertexId
	es []SkeletonEdge
}

// Decompose builds the SPQR tree of a single biconnected component given
// as an explicit vertex set and skeleton edge list (all edges real on
// first entry; split() introduces virtual edges internally).
//
// Complexity: O(V^2 * (V+E)) worst case — a pair scan per split, each
// split doing a connectivity pass; acceptable for the graph sizes this
// kernel targets.
func Decompose(vs []topograph.VertexId, es []SkeletonEdge) (*Tree, error) {
	if len(vs) < 2 {
		return nil, fmt.Errorf("spqr: Decompose: need at least 2 vertices: %w", ErrBadInput)
	}

	t := &Tree{}
	virtualOwner := make(map[int][]int)

	queue := []pending{{vs: vs, es: es}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if kind, terminal := classifyTerminal(cur); terminal {
			addNode(t, kind, cur, virtualOwner)
			continue
		}

		u, v, ok := findSplitPair(cur)
		if !ok {
			addNode(t, RNode, cur, virtualOwner)
			continue
		}

		pieces, direct := split(cur, u, v)
		totalEdgesAtPair := len(pieces) + len(direct)

		if totalEdgesAtPair == 2 && len(direct) == 0 {
			vid := newVirtualID()
			pieces[0].es = append(pieces[0].es, SkeletonEdge{Kind: VirtualEdge, Virtual: vid, U: u, V: v})
			pieces[1].es = append(pieces[1].es, SkeletonEdge{Kind: VirtualEdge, Virtual: vid, U: u, V: v})
			queue = append(queue, pieces...)
			continue
		}

		aggEdges := make([]SkeletonEdge, 0, totalEdgesAtPair)
		aggEdges = append(aggEdges, direct...)
		for i := range pieces {
			vid := newVirtualID()
			aggEdges = append(aggEdges, SkeletonEdge{Kind: VirtualEdge, Virtual: vid, U: u, V: v})
			pieces[i].es = append(pieces[i].es, SkeletonEdge{Kind: VirtualEdge, Virtual: vid, U: u, V: v})
		}
		addNode(t, PNode, pending{vs: []topograph.VertexId{u, v}, es: aggEdges}, virtualOwner)
		queue = append(queue, pieces...)
	}

	spawnQLeaves(t)
	pairVirtualEdges(t, virtualOwner)

	return t, nil
}

var virtualCounter int

func newVirtualID() int {
	virtualCounter++
	return virtualCounter
}

func addNode(t *Tree, kind NodeKind, c pending, virtualOwner map[int][]int) {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Kind: kind, Vertices: c.vs, Edges: c.es})
	t.Adj = append(t.Adj, nil)
	for _, e := range c.es {
		if e.Kind == VirtualEdge {
			virtualOwner[e.Virtual] = append(virtualOwner[e.Virtual], idx)
		}
	}
}

func connectTree(t *Tree, a, b int) {
	t.Adj[a] = append(t.Adj[a], b)
	t.Adj[b] = append(t.Adj[b], a)
}

// pairVirtualEdges links every pair of nodes sharing a virtual id with a
// tree edge.
func pairVirtualEdges(t *Tree, virtualOwner map[int][]int) {
	ids := make([]int, 0, len(virtualOwner))
	for vid := range virtualOwner {
		ids = append(ids, vid)
	}
	sort.Ints(ids)
	for _, vid := range ids {
		owners := virtualOwner[vid]
		if len(owners) == 2 {
			connectTree(t, owners[0], owners[1])
		}
	}
}

// spawnQLeaves attaches a Q leaf node (the bare real edge) to every real
// edge owned by a non-Q node, per the tree-construction rule: real edges
// of internal nodes surface as Q children.
func spawnQLeaves(t *Tree) {
	n := len(t.Nodes)
	for i := 0; i < n; i++ {
		if t.Nodes[i].Kind == QNode {
			continue
		}
		for _, e := range t.Nodes[i].Edges {
			if e.Kind != RealEdge {
				continue
			}
			qIdx := len(t.Nodes)
			t.Nodes = append(t.Nodes, Node{
				Kind:     QNode,
				Vertices: []topograph.VertexId{e.U, e.V},
				Edges:    []SkeletonEdge{e},
			})
			t.Adj = append(t.Adj, nil)
			connectTree(t, i, qIdx)
		}
	}
}

// classifyTerminal reports whether c is already a base SPQR shape that
// must not be split further, and which kind it is.
func classifyTerminal(c pending) (NodeKind, bool) {
	if len(c.es) == 1 && c.es[0].Kind == RealEdge {
		return QNode, true
	}
	if isCycle(c) {
		return SNode, true
	}
	if isPureParallelBundle(c) {
		return PNode, true
	}
	if len(c.vs) <= 3 {
		return RNode, true
	}
	return RNode, false
}

func isCycle(c pending) bool {
	if len(c.vs) != len(c.es) || len(c.vs) < 3 {
		return false
	}
	deg := make(map[topograph.VertexId]int, len(c.vs))
	for _, e := range c.es {
		deg[e.U]++
		deg[e.V]++
	}
	for _, v := range c.vs {
		if deg[v] != 2 {
			return false
		}
	}
	return true
}

func isPureParallelBundle(c pending) bool {
	if len(c.vs) != 2 {
		return false
	}
	u, v := c.vs[0], c.vs[1]
	for _, e := range c.es {
		if !(e.U == u && e.V == v) && !(e.U == v && e.V == u) {
			return false
		}
	}
	return len(c.es) >= 2
}

// findSplitPair searches c for a valid separation pair: two vertices
// joined by >=2 direct edges, or two vertices whose removal disconnects
// the rest of c into >=2 pieces.
func findSplitPair(c pending) (topograph.VertexId, topograph.VertexId, bool) {
	n := len(c.vs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			u, v := c.vs[i], c.vs[j]
			if len(directEdgesBetween(c.es, u, v)) >= 2 {
				return u, v, true
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			u, v := c.vs[i], c.vs[j]
			pieces, _ := split(c, u, v)
			if len(pieces) >= 2 {
				return u, v, true
			}
		}
	}
	return 0, 0, false
}

func directEdgesBetween(es []SkeletonEdge, u, v topograph.VertexId) []SkeletonEdge {
	var out []SkeletonEdge
	for _, e := range es {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			out = append(out, e)
		}
	}
	return out
}

// split partitions c's vertices (excluding u, v) into connected pieces
// under c's edges restricted to neither endpoint being u or v, each piece
// expanded with u and v and the edges touching it; edges directly between
// u and v are returned separately.
func split(c pending, u, v topograph.VertexId) ([]pending, []SkeletonEdge) {
	rest := make([]topograph.VertexId, 0, len(c.vs))
	for _, x := range c.vs {
		if x != u && x != v {
			rest = append(rest, x)
		}
	}

	adj := make(map[topograph.VertexId][]topograph.VertexId, len(rest))
	isRest := make(map[topograph.VertexId]bool, len(rest))
	for _, x := range rest {
		isRest[x] = true
	}
	var direct []SkeletonEdge
	for _, e := range c.es {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			direct = append(direct, e)
			continue
		}
		if isRest[e.U] && isRest[e.V] {
			adj[e.U] = append(adj[e.U], e.V)
			adj[e.V] = append(adj[e.V], e.U)
		}
	}

	visited := make(map[topograph.VertexId]bool, len(rest))
	var groups [][]topograph.VertexId
	for _, start := range rest {
		if visited[start] {
			continue
		}
		var group []topograph.VertexId
		stack := []topograph.VertexId{start}
		visited[start] = true
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			group = append(group, x)
			for _, y := range adj[x] {
				if !visited[y] {
					visited[y] = true
					stack = append(stack, y)
				}
			}
		}
		groups = append(groups, group)
	}

	groupOf := make(map[topograph.VertexId]int, len(rest))
	for gi, g := range groups {
		for _, x := range g {
			groupOf[x] = gi
		}
	}

	pieces := make([]pending, len(groups))
	for gi, g := range groups {
		pieces[gi] = pending{vs: append([]topograph.VertexId{u, v}, g...)}
	}
	for _, e := range c.es {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			continue
		}
		var gi int
		switch {
		case isRest[e.U]:
			gi = groupOf[e.U]
		case isRest[e.V]:
			gi = groupOf[e.V]
		default:
			continue // shouldn't happen: only direct u-v edges have neither endpoint in rest
		}
		pieces[gi].es = append(pieces[gi].es, e)
	}

	return pieces, direct
}
