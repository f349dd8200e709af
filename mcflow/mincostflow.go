// File: mincostflow.go — the successive-shortest-augmenting-path solver:
// shift flow by lower bounds onto a residual graph with a super
// source/sink, seed node potentials with Bellman-Ford (to tolerate the
// negative reduced costs bound-shifting can introduce), then repeatedly
// augment along the reduced-cost shortest path found by Dijkstra.
package mcflow

import (
	"container/heap"
	"fmt"
	"math"
)

type residual struct {
	n        int
	to       []int
	cap      []int
	cost     []float64
	head     [][]int
	arcOfReal []int // maps original Arcs index -> its forward residual arc index
}

func newResidual(n int) *residual {
	return &residual{n: n, head: make([][]int, n)}
}

// addArc adds a forward/backward arc pair; returns the forward arc's
// index. The backward arc is always at index+1 (an xor-1 pairing, the
// same twin convention the half-edge mesh uses).
func (g *residual) addArc(u, v, cap int, cost float64) int {
	idx := len(g.to)
	g.to = append(g.to, v)
	g.cap = append(g.cap, cap)
	g.cost = append(g.cost, cost)
	g.head[u] = append(g.head[u], idx)

	g.to = append(g.to, u)
	g.cap = append(g.cap, 0)
	g.cost = append(g.cost, -cost)
	g.head[v] = append(g.head[v], idx+1)

	return idx
}

// Solve computes a minimum-cost flow satisfying every arc's bounds and
// every node's supply/demand, if feasible.
//
// Complexity: O(V*E) Bellman-Ford init, then O(F * E log V) for F
// augmentations via a binary heap (container/heap).
func Solve(in Input) (*Result, error) {
	n := in.NodeCount
	if n <= 0 {
		return nil, fmt.Errorf("mcflow: Solve: NodeCount must be positive: %w", ErrBadInput)
	}
	for i, a := range in.Arcs {
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
			return nil, fmt.Errorf("mcflow: Solve: arc %d endpoints out of range: %w", i, ErrBadInput)
		}
		if a.Upper < a.Lower {
			return nil, fmt.Errorf("mcflow: Solve: arc %d upper < lower: %w", i, ErrBadInput)
		}
	}
	if len(in.Demands) != 0 && len(in.Demands) != n {
		return nil, fmt.Errorf("mcflow: Solve: Demands length must be 0 or NodeCount: %w", ErrBadInput)
	}

	supply := make([]int, n)
	for i, d := range in.Demands {
		supply[i] = d
	}

	S, T := n, n+1
	g := newResidual(n + 2)
	g.arcOfReal = make([]int, len(in.Arcs))

	for i, a := range in.Arcs {
		g.arcOfReal[i] = g.addArc(a.From, a.To, a.Upper-a.Lower, a.Cost)
		supply[a.From] -= a.Lower
		supply[a.To] += a.Lower
	}

	required := 0
	for v := 0; v < n; v++ {
		if supply[v] > 0 {
			g.addArc(S, v, supply[v], 0)
			required += supply[v]
		} else if supply[v] < 0 {
			g.addArc(v, T, -supply[v], 0)
		}
	}

	pot := bellmanFord(g, S)

	sent, totalCost := 0, 0.0
	for sent < required {
		dist, prevArc, reached := dijkstraReduced(g, S, pot)
		if !reached[T] {
			break
		}
		for v := 0; v < g.n; v++ {
			if reached[v] {
				pot[v] += dist[v]
			}
		}

		bottleneck := required - sent
		for v := T; v != S; {
			arc := prevArc[v]
			if g.cap[arc] < bottleneck {
				bottleneck = g.cap[arc]
			}
			v = reverseEndpoint(g, arc)
		}

		for v := T; v != S; {
			arc := prevArc[v]
			g.cap[arc] -= bottleneck
			g.cap[arc^1] += bottleneck
			totalCost += float64(bottleneck) * g.cost[arc]
			v = reverseEndpoint(g, arc)
		}
		sent += bottleneck
	}

	res := &Result{Flow: make([]int, len(in.Arcs)), TotalCost: totalCost, Feasible: sent == required}
	for i, a := range in.Arcs {
		idx := g.arcOfReal[i]
		used := (a.Upper - a.Lower) - g.cap[idx]
		res.Flow[i] = a.Lower + used
	}
	return res, nil
}

// reverseEndpoint returns the tail of arc (the head of its twin).
func reverseEndpoint(g *residual, arc int) int {
	return g.to[arc^1]
}

func bellmanFord(g *residual, src int) []float64 {
	dist := make([]float64, g.n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	for i := 0; i < g.n-1; i++ {
		changed := false
		for u := 0; u < g.n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, arc := range g.head[u] {
				if g.cap[arc] <= 0 {
					continue
				}
				v := g.to[arc]
				nd := dist[u] + g.cost[arc]
				if nd < dist[v] {
					dist[v] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	for i := range dist {
		if math.IsInf(dist[i], 1) {
			dist[i] = 0
		}
	}
	return dist
}

type distItem struct {
	v    int
	dist float64
}
type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func dijkstraReduced(g *residual, src int, pot []float64) (dist []float64, prevArc []int, reached []bool) {
	dist = make([]float64, g.n)
	prevArc = make([]int, g.n)
	reached = make([]bool, g.n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevArc[i] = -1
	}
	dist[src] = 0
	reached[src] = true

	h := &distHeap{{v: src, dist: 0}}
	heap.Init(h)
	for h.Len() > 0 {
		top := heap.Pop(h).(distItem)
		if top.dist > dist[top.v] {
			continue
		}
		for _, arc := range g.head[top.v] {
			if g.cap[arc] <= 0 {
				continue
			}
			w := g.to[arc]
			reduced := g.cost[arc] + pot[top.v] - pot[w]
			nd := dist[top.v] + reduced
			if nd < dist[w]-1e-12 {
				dist[w] = nd
				prevArc[w] = arc
				reached[w] = true
				heap.Push(h, distItem{v: w, dist: nd})
			}
		}
	}
	return dist, prevArc, reached
}
