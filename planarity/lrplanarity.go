// File: lrplanarity.go — the left-right planarity test proper: orientation,
// testing (conflict-pair stack), and embedding passes, all driven by
// explicit-stack DFS frames over one spanning forest.
//
// Determinism: traversal order is the ascending adjacency order recorded by
// topograph.Graph (itself builder insertion order), so two runs over the
// same *topograph.Graph always produce byte-identical results.
package planarity

import "github.com/katalvlaran/topokit/topograph"

const noEdge topograph.EdgeId = -1

// interval is a run of edges on one side of a conflict pair, identified by
// its lowest and highest edge (empty iff low == noEdge).
type interval struct {
	low, high topograph.EdgeId
}

func (iv interval) empty() bool { return iv.low == noEdge }

// conflictPair is a left/right pair of return-edge intervals, as used by
// Brandes' planarity test to track which return edges must nest on which
// side of the current DFS path.
type conflictPair struct {
	l, r interval
}

// lrState holds all per-run mutable state for the three DFS passes. Arrays
// are indexed by topograph.EdgeId / topograph.VertexId directly.
type lrState struct {
	g      *topograph.Graph
	ignore []bool // edges excluded from the walk (e.g. ignored self-loops)

	height     []int // DFS depth; -1 until visited
	parentEdge []topograph.EdgeId

	// orientation: tail[e]/head[e] give the DFS-chosen direction of edge e.
	oriented     []bool
	tail, head   []topograph.VertexId
	lowpt        []int
	lowpt2       []int
	nestingDepth []int

	orderedAdj [][]topograph.EdgeId // per-vertex out-arcs, sorted by nestingDepth

	// testing phase
	side        []int // +1 or -1, per edge
	ref         []topograph.EdgeId
	lowptEdge   []topograph.EdgeId
	stack       []conflictPair
	stackBottom map[topograph.EdgeId]int

	// embedding phase
	rotation [][]rotEntry
	leftRef  []int // index into rotation[v] of the left reference, -1 if none
	rightRef []int
	roots    []topograph.VertexId

	failedAt topograph.VertexId // vertex whose loop first hit an unresolvable conflict
}

type rotEntry struct {
	edge topograph.EdgeId
	to   topograph.VertexId
}

func newLRState(g *topograph.Graph, ignore []bool) *lrState {
	n := g.VertexCount()
	m := g.EdgeCount()
	s := &lrState{
		g:            g,
		ignore:       ignore,
		height:       make([]int, n),
		parentEdge:   make([]topograph.EdgeId, n),
		oriented:     make([]bool, m),
		tail:         make([]topograph.VertexId, m),
		head:         make([]topograph.VertexId, m),
		lowpt:        make([]int, m),
		lowpt2:       make([]int, m),
		nestingDepth: make([]int, m),
		orderedAdj:   make([][]topograph.EdgeId, n),
		side:         make([]int, m),
		ref:          make([]topograph.EdgeId, m),
		lowptEdge:    make([]topograph.EdgeId, m),
		stackBottom:  make(map[topograph.EdgeId]int, m),
		rotation:     make([][]rotEntry, n),
		leftRef:      make([]int, n),
		rightRef:     make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.height[i] = -1
		s.parentEdge[i] = noEdge
		s.leftRef[i] = -1
		s.rightRef[i] = -1
	}
	for i := 0; i < m; i++ {
		s.ref[i] = noEdge
		s.side[i] = 1
		s.lowptEdge[i] = noEdge
	}
	return s
}

// ---- pass 1: orientation ------------------------------------------------

type orientFrame struct {
	v          topograph.VertexId
	parentEdge topograph.EdgeId // edge v was reached through; doubles as the
	// "pending" edge its own parent must finishOrientedEdge on return
	iter int
}

// dfsOrientation runs the iterative DFS that assigns a direction to every
// edge and computes lowpt/lowpt2/nesting-depth, rooted at every undiscovered
// vertex (one root per connected component).
func (s *lrState) dfsOrientation() {
	n := len(s.height)
	for start := 0; start < n; start++ {
		v := topograph.VertexId(start)
		if s.height[v] != -1 {
			continue
		}
		s.height[v] = 0
		s.roots = append(s.roots, v)

		stack := []orientFrame{{v: v, parentEdge: noEdge, iter: 0}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj := s.g.Adjacency(top.v)
			descended := false

			for top.iter < len(adj) {
				inc := adj[top.iter]
				top.iter++
				e := inc.Edge
				w := inc.To
				if s.ignore[e] || s.oriented[e] {
					continue
				}
				s.oriented[e] = true
				s.tail[e] = top.v
				s.head[e] = w
				s.lowpt[e] = s.height[top.v]
				s.lowpt2[e] = s.height[top.v]

				if s.height[w] == -1 {
					s.parentEdge[w] = e
					s.height[w] = s.height[top.v] + 1
					stack = append(stack, orientFrame{v: w, parentEdge: e, iter: 0})
					descended = true
					break
				}
				s.lowpt[e] = s.height[w]
				s.finishOrientedEdge(top.v, top.parentEdge, e)
			}
			if descended {
				continue
			}

			// top fully explored; fold its pending tree edge (if any) into
			// the grandparent, then pop.
			finished := *top
			stack = stack[:len(stack)-1]
			if finished.parentEdge != noEdge {
				// the frame that pushed us recorded e=finished.parentEdge as
				// "pending"; the owning vertex is now the new stack top.
				parent := &stack[len(stack)-1]
				s.finishOrientedEdge(parent.v, parent.parentEdge, finished.parentEdge)
			}
		}
	}
}

// finishOrientedEdge computes e's nesting depth and, if v has an incoming
// parent edge parentE, folds e's lowpoints up into it.
func (s *lrState) finishOrientedEdge(v topograph.VertexId, parentE, e topograph.EdgeId) {
	s.nestingDepth[e] = 2 * s.lowpt[e]
	if s.lowpt2[e] < s.height[v] {
		s.nestingDepth[e]++
	}
	if parentE == noEdge {
		return
	}
	switch {
	case s.lowpt[e] < s.lowpt[parentE]:
		s.lowpt2[parentE] = minInt(s.lowpt[parentE], s.lowpt2[e])
		s.lowpt[parentE] = s.lowpt[e]
	case s.lowpt[e] > s.lowpt[parentE]:
		s.lowpt2[parentE] = minInt(s.lowpt2[parentE], s.lowpt[e])
	default:
		s.lowpt2[parentE] = minInt(s.lowpt2[parentE], s.lowpt2[e])
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// buildOrderedAdj sorts every vertex's out-arcs (DG successors) by ascending
// nesting depth, the order both the testing and embedding passes traverse.
func (s *lrState) buildOrderedAdj() {
	m := len(s.tail)
	for e := 0; e < m; e++ {
		if !s.oriented[topograph.EdgeId(e)] {
			continue
		}
		v := s.tail[e]
		s.orderedAdj[v] = append(s.orderedAdj[v], topograph.EdgeId(e))
	}
	for v := range s.orderedAdj {
		arcs := s.orderedAdj[v]
		// insertion sort: vertex degree is small in practice and this keeps
		// the sort allocation-free and stable on nesting-depth ties.
		for i := 1; i < len(arcs); i++ {
			for j := i; j > 0 && s.nestingDepth[arcs[j-1]] > s.nestingDepth[arcs[j]]; j-- {
				arcs[j-1], arcs[j] = arcs[j], arcs[j-1]
			}
		}
	}
}

// ---- pass 2: testing -----------------------------------------------------

type testFrame struct {
	v          topograph.VertexId
	parentEdge topograph.EdgeId // edge v was reached through
	iter       int
}

// dfsTesting walks every root's DFS tree checking the conflict-pair
// invariant; it returns false at the first point a forced orientation
// swap is impossible, proving nonplanarity.
func (s *lrState) dfsTesting() bool {
	for _, root := range s.roots {
		if !s.dfsTestingOne(root) {
			return false
		}
	}
	return true
}

func (s *lrState) dfsTestingOne(root topograph.VertexId) bool {
	stack := []testFrame{{v: root, parentEdge: noEdge, iter: 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		arcs := s.orderedAdj[top.v]
		descended := false

		for top.iter < len(arcs) {
			e := arcs[top.iter]
			top.iter++
			w := s.head[e]
			s.stackBottom[e] = len(s.stack)

			isTree := s.parentEdge[w] == e
			if isTree {
				stack = append(stack, testFrame{v: w, parentEdge: e, iter: 0})
				descended = true
				break
			}
			s.lowptEdge[e] = e
			s.stack = append(s.stack, conflictPair{l: interval{noEdge, noEdge}, r: interval{e, e}})
			if !s.postEdgeCheck(top.v, e, arcs) {
				return false
			}
		}
		if descended {
			continue
		}

		finished := *top
		stack = stack[:len(stack)-1]
		s.trackback(finished.v, finished.parentEdge)

		if finished.parentEdge != noEdge {
			parent := &stack[len(stack)-1]
			parentArcs := s.orderedAdj[parent.v]
			if !s.postEdgeCheck(parent.v, finished.parentEdge, parentArcs) {
				return false
			}
		}
	}
	return true
}

// postEdgeCheck applies "integrate new return edges": called immediately
// after e (tree or back) has been fully processed from v's perspective.
func (s *lrState) postEdgeCheck(v topograph.VertexId, e topograph.EdgeId, arcsOfV []topograph.EdgeId) bool {
	if s.lowpt[e] >= s.height[v] {
		return true
	}
	parentE := s.parentEdge[v]
	if parentE == noEdge {
		return true
	}
	if len(arcsOfV) > 0 && arcsOfV[0] == e {
		s.lowptEdge[parentE] = s.lowptEdge[e]
		return true
	}
	if ok := s.addConstraints(e, parentE); !ok {
		s.failedAt = v
		return false
	}
	return true
}

func (s *lrState) top() conflictPair { return s.stack[len(s.stack)-1] }
func (s *lrState) pop() conflictPair {
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return p
}
func (s *lrState) push(p conflictPair) { s.stack = append(s.stack, p) }

func (s *lrState) conflicting(iv interval, e topograph.EdgeId) bool {
	return !iv.empty() && s.lowpt[iv.high] > s.lowpt[e]
}

func (s *lrState) lowest(p conflictPair) int {
	if p.l.empty() {
		return s.lowpt[p.r.low]
	}
	if p.r.empty() {
		return s.lowpt[p.l.low]
	}
	return minInt(s.lowpt[p.l.low], s.lowpt[p.r.low])
}

// addConstraints merges the conflict pairs accumulated while processing e
// into one pair constrained against parentE, per Brandes' algorithm.
func (s *lrState) addConstraints(e, parentE topograph.EdgeId) bool {
	p := conflictPair{l: interval{noEdge, noEdge}, r: interval{noEdge, noEdge}}
	bottom := s.stackBottom[e]

	for {
		q := s.pop()
		if !q.l.empty() {
			q.l, q.r = q.r, q.l
		}
		if !q.l.empty() {
			return false // both sides nonempty: no valid orientation
		}
		if s.lowpt[q.r.low] > s.lowpt[parentE] {
			if p.r.empty() {
				p.r.high = q.r.high
			} else {
				s.ref[p.r.low] = q.r.high
			}
			p.r.low = q.r.low
		} else {
			s.ref[q.r.low] = s.lowptEdge[parentE]
		}
		if len(s.stack) == bottom {
			break
		}
	}

	for len(s.stack) > 0 && (s.conflicting(s.top().l, e) || s.conflicting(s.top().r, e)) {
		q := s.pop()
		if s.conflicting(q.r, e) {
			q.l, q.r = q.r, q.l
		}
		if s.conflicting(q.r, e) {
			return false
		}
		s.ref[p.r.low] = q.r.high
		if !q.r.empty() {
			p.r.low = q.r.low
		}
		if p.l.empty() {
			p.l.high = q.l.high
		} else {
			s.ref[p.l.low] = q.l.high
		}
		p.l.low = q.l.low
	}

	if !(p.l.empty() && p.r.empty()) {
		s.push(p)
	}
	return true
}

// trackback runs once v's own loop is exhausted: trims back edges that
// terminate at v's DFS parent and records a side reference for the parent
// edge, per Brandes' algorithm.
func (s *lrState) trackback(v topograph.VertexId, parentE topograph.EdgeId) {
	if parentE == noEdge {
		return
	}
	u := s.tail[parentE]
	s.trimBackEdges(u)

	if s.lowpt[parentE] < s.height[u] && len(s.stack) > 0 {
		top := s.top()
		hl, hr := top.l.high, top.r.high
		if hl != noEdge && (hr == noEdge || s.lowpt[hl] > s.lowpt[hr]) {
			s.ref[parentE] = hl
		} else {
			s.ref[parentE] = hr
		}
	}
}

// trimBackEdges discards conflict pairs whose return edges end exactly at
// u (v's DFS parent), fixing the side of any left-interval edge that can no
// longer be swapped.
func (s *lrState) trimBackEdges(u topograph.VertexId) {
	for len(s.stack) > 0 && s.lowest(s.top()) == s.height[u] {
		p := s.pop()
		if p.l.low != noEdge {
			s.side[p.l.low] = -1
		}
	}
	if len(s.stack) == 0 {
		return
	}
	p := s.pop()
	for p.l.high != noEdge && s.lowpt[p.l.high] == s.height[u] {
		p.l.high = s.ref[p.l.high]
	}
	if p.l.high == noEdge && p.l.low != noEdge {
		s.ref[p.l.low] = p.r.low
		s.side[p.l.low] = -1
		p.l.low = noEdge
	}
	for p.r.high != noEdge && s.lowpt[p.r.high] == s.height[u] {
		p.r.high = s.ref[p.r.high]
	}
	if p.r.high == noEdge && p.r.low != noEdge {
		s.ref[p.r.low] = p.l.low
		s.side[p.r.low] = -1
		p.r.low = noEdge
	}
	s.push(p)
}

// sign resolves e's final orientation sign by walking (and collapsing) its
// ref chain iteratively, equivalent to the recursive definition
// side[e] *= sign(ref[e]); ref[e] = nil but without recursion depth risk.
func (s *lrState) sign(e topograph.EdgeId) int {
	var path []topograph.EdgeId
	cur := e
	for s.ref[cur] != noEdge {
		path = append(path, cur)
		cur = s.ref[cur]
	}
	result := s.side[cur]
	for i := len(path) - 1; i >= 0; i-- {
		ei := path[i]
		s.side[ei] *= result
		s.ref[ei] = noEdge
		result = s.side[ei]
	}
	return s.side[e]
}

// resolveSigns re-signs every oriented edge's nesting depth by its final
// side, the ordering the embedding pass relies on.
func (s *lrState) resolveSigns() {
	for e := 0; e < len(s.oriented); e++ {
		eid := topograph.EdgeId(e)
		if !s.oriented[eid] {
			continue
		}
		s.nestingDepth[eid] = s.sign(eid) * s.nestingDepth[eid]
	}
	s.resortOrderedAdj()
}

func (s *lrState) resortOrderedAdj() {
	for v := range s.orderedAdj {
		arcs := s.orderedAdj[v]
		for i := 1; i < len(arcs); i++ {
			for j := i; j > 0 && s.nestingDepth[arcs[j-1]] > s.nestingDepth[arcs[j]]; j-- {
				arcs[j-1], arcs[j] = arcs[j], arcs[j-1]
			}
		}
	}
}

// ---- pass 3: embedding ---------------------------------------------------

type embedFrame struct {
	v    topograph.VertexId
	iter int
}

// dfsEmbedding builds every vertex's rotation list: each list starts as the
// vertex's own out-arcs in nesting-depth order, a tree edge puts the parent
// at the front of the child's list (the child's "anchor") and moves the
// parent's left/right references to that child's entry, and back edges are
// inserted into the ancestor's list on the side its resolved sign selects.
func (s *lrState) dfsEmbedding() {
	for v := range s.rotation {
		s.rotation[v] = nil
		for _, e := range s.orderedAdj[v] {
			s.appendOwnArc(topograph.VertexId(v), e, s.head[e])
		}
	}
	for _, root := range s.roots {
		stack := []embedFrame{{v: root, iter: 0}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			arcs := s.orderedAdj[top.v]
			descended := false

			for top.iter < len(arcs) {
				e := arcs[top.iter]
				top.iter++
				w := s.head[e]

				if s.parentEdge[w] == e {
					s.seedChildAnchor(w, e, top.v)
					for i, en := range s.rotation[top.v] {
						if en.edge == e {
							s.leftRef[top.v], s.rightRef[top.v] = i, i
						}
					}
					stack = append(stack, embedFrame{v: w, iter: 0})
					descended = true
					break
				}
				s.insertBackEdge(w, e, top.v)
			}
			if descended {
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// appendOwnArc records v's own out-arc to "to" (edge e) in v's rotation:
// the first entry seeds the list, later ones append after v's right
// reference.
func (s *lrState) appendOwnArc(v topograph.VertexId, e topograph.EdgeId, to topograph.VertexId) {
	entry := rotEntry{edge: e, to: to}
	if len(s.rotation[v]) == 0 {
		s.rotation[v] = append(s.rotation[v], entry)
		s.leftRef[v] = 0
		s.rightRef[v] = 0
		return
	}
	idx := s.insertAfter(v, s.rightRef[v], entry)
	s.rightRef[v] = idx
}

// seedChildAnchor gives child w its first rotation entry: the edge back to
// its parent v, placed at the front of w's list.
func (s *lrState) seedChildAnchor(w topograph.VertexId, e topograph.EdgeId, v topograph.VertexId) {
	entry := rotEntry{edge: e, to: v}
	s.rotation[w] = append([]rotEntry{entry}, s.rotation[w]...)
	s.leftRef[w] = 0
	s.rightRef[w] = 0
}

// insertBackEdge places v as a neighbor of ancestor w (the edge e running
// from descendant v up to w), clockwise after w's right reference when
// side[e] is +1, or counter-clockwise before its left reference when -1.
func (s *lrState) insertBackEdge(w topograph.VertexId, e topograph.EdgeId, v topograph.VertexId) {
	entry := rotEntry{edge: e, to: v}
	if s.side[e] == 1 {
		s.insertAfter(w, s.rightRef[w], entry)
	} else {
		idx := s.insertBefore(w, s.leftRef[w], entry)
		s.leftRef[w] = idx
	}
}

// insertAfter/insertBefore splice entry into rotation[v] relative to the
// element at index ref, fixing up leftRef/rightRef indices that shift as a
// result, and return entry's new index.
func (s *lrState) insertAfter(v topograph.VertexId, ref int, entry rotEntry) int {
	list := s.rotation[v]
	newList := make([]rotEntry, 0, len(list)+1)
	newList = append(newList, list[:ref+1]...)
	newIdx := len(newList)
	newList = append(newList, entry)
	newList = append(newList, list[ref+1:]...)
	s.rotation[v] = newList
	s.shiftRefs(v, newIdx)
	return newIdx
}

func (s *lrState) insertBefore(v topograph.VertexId, ref int, entry rotEntry) int {
	list := s.rotation[v]
	newList := make([]rotEntry, 0, len(list)+1)
	newList = append(newList, list[:ref]...)
	newIdx := len(newList)
	newList = append(newList, entry)
	newList = append(newList, list[ref:]...)
	s.rotation[v] = newList
	s.shiftRefs(v, newIdx)
	return newIdx
}

// shiftRefs bumps leftRef[v]/rightRef[v] by one when a new element was
// spliced in at or before their current index.
func (s *lrState) shiftRefs(v topograph.VertexId, insertedAt int) {
	if s.leftRef[v] >= insertedAt {
		s.leftRef[v]++
	}
	if s.rightRef[v] >= insertedAt {
		s.rightRef[v]++
	}
}
