// File: route.go — multi-source Dijkstra over a dual graph, and the
// higher-level routing queries the planarization layout uses to reinsert
// an edge that crosses the current embedding.
package dual

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/topoerr"
	"github.com/katalvlaran/topokit/topograph"
)

// ErrLayoutInfeasible is re-exported from topoerr.
var ErrLayoutInfeasible = topoerr.ErrLayoutInfeasible

// ShortestPaths is the result of a multi-source Dijkstra run: per-face
// distance from the nearest source, and the arc used to reach it (for path
// reconstruction).
type ShortestPaths struct {
	Dist   []float64
	ViaArc []Edge // ViaArc[f] is the arc that reached f on the shortest path, with ToFace holding the predecessor face; Via == -1 at a source
}

type heapItem struct {
	face int
	dist float64
}

type faceHeap []heapItem

func (h faceHeap) Len() int            { return len(h) }
func (h faceHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h faceHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *faceHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *faceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// DualShortestPath runs Dijkstra from every face in sources simultaneously,
// returning the distance to (and reconstructable path towards) every
// reachable face.
//
// Complexity: O((F+E) log F) via a binary heap (container/heap).
func DualShortestPath(d *Graph, sources []int) *ShortestPaths {
	n := d.FaceCount()
	dist := make([]float64, n)
	viaArc := make([]Edge, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		viaArc[i] = Edge{ToFace: -1, Via: -1}
	}

	h := &faceHeap{}
	heap.Init(h)
	for _, s := range sources {
		if dist[s] > 0 {
			dist[s] = 0
			heap.Push(h, heapItem{face: s, dist: 0})
		}
	}

	for h.Len() > 0 {
		top := heap.Pop(h).(heapItem)
		if top.dist > dist[top.face] {
			continue
		}
		for _, arc := range d.Adj[top.face] {
			nd := top.dist + arc.Weight
			if nd < dist[arc.ToFace] {
				dist[arc.ToFace] = nd
				viaArc[arc.ToFace] = Edge{ToFace: top.face, Via: arc.Via, Weight: arc.Weight}
				heap.Push(h, heapItem{face: arc.ToFace, dist: nd})
			}
		}
	}

	return &ShortestPaths{Dist: dist, ViaArc: viaArc}
}

// RouteEdgeFixedEmbedding finds the cheapest sequence of primal edges an
// edge from u to v must cross to be reinserted into m's fixed embedding,
// returning the crossed half-edges in crossing order.
//
// Errors: ErrLayoutInfeasible if no face incident to u can reach any face
// incident to v.
func RouteEdgeFixedEmbedding(m *mesh.Mesh, d *Graph, u, v topograph.VertexId) ([]mesh.HalfEdgeId, error) {
	sources := facesOf(m, u)
	targets := facesOf(m, v)

	sp := DualShortestPath(d, sources)
	best, bestDist := -1, math.Inf(1)
	for _, t := range targets {
		if sp.Dist[t] < bestDist {
			best, bestDist = t, sp.Dist[t]
		}
	}
	if best == -1 || math.IsInf(bestDist, 1) {
		return nil, fmt.Errorf("dual: RouteEdgeFixedEmbedding: no dual path from %d to %d: %w", u, v, ErrLayoutInfeasible)
	}

	var crossings []mesh.HalfEdgeId
	cur := best
	for sp.ViaArc[cur].ToFace != -1 {
		arc := sp.ViaArc[cur]
		crossings = append(crossings, arc.Via)
		cur = arc.ToFace
	}
	// reverse into source-to-target order
	for i, j := 0, len(crossings)-1; i < j; i, j = i+1, j-1 {
		crossings[i], crossings[j] = crossings[j], crossings[i]
	}
	return crossings, nil
}

func facesOf(m *mesh.Mesh, v topograph.VertexId) []int {
	seen := make(map[int]bool)
	var faces []int
	for _, h := range m.OutgoingHalfEdges(v) {
		f := m.Face[h]
		if !seen[f] {
			seen[f] = true
			faces = append(faces, f)
		}
	}
	return faces
}
