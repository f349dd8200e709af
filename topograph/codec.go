// File: codec.go
// Role: adapters between Graph and the plain-data shapes consumed at the
//       system boundary (the dataset file's wire shape, and the generic
//       edge-list / adjacency-list forms algorithms outside this module may
//       already hold), translating between representations without
//       mutating the source.
package topograph

import "encoding/json"

// EdgeTuple is a (u, v) pair as used by a dataset's wire format and the
// worker payload's edges field.
type EdgeTuple struct {
	U VertexId
	V VertexId
}

// ToEdgeList returns every edge as a VertexId pair in insertion order,
// discarding directedness and edge id (use Edges() to keep those).
func (g *Graph) ToEdgeList() []EdgeTuple {
	out := make([]EdgeTuple, len(g.edges))
	for i, e := range g.edges {
		out[i] = EdgeTuple{U: e.U, V: e.V}
	}
	return out
}

// ToAdjList returns, for every vertex in order, the neighbor list as
// returned by Neighbors.
func (g *Graph) ToAdjList() [][]VertexId {
	out := make([][]VertexId, g.VertexCount())
	for v := range out {
		out[v] = g.Neighbors(VertexId(v))
	}
	return out
}

// jsonGraph is the wire shape for Graph JSON (de)serialisation: parallel to
// a dataset's shape but carrying directedness, used for internal
// round-tripping (tests, worker result inputs) rather than the external
// dataset file format itself.
type jsonGraph struct {
	Labels []jsonLabel `json:"labels"`
	Edges  []jsonEdge  `json:"edges"`
}

type jsonLabel struct {
	Kind int     `json:"kind"`
	Str  string  `json:"str,omitempty"`
	Num  float64 `json:"num,omitempty"`
}

type jsonEdge struct {
	U        VertexId `json:"u"`
	V        VertexId `json:"v"`
	Directed bool     `json:"directed,omitempty"`
}

// ToJSON serialises g into a deterministic JSON document (insertion order
// preserved for both labels and edges).
func (g *Graph) ToJSON() ([]byte, error) {
	jg := jsonGraph{
		Labels: make([]jsonLabel, len(g.labels)),
		Edges:  make([]jsonEdge, len(g.edges)),
	}
	for i, l := range g.labels {
		jg.Labels[i] = jsonLabel{Kind: int(l.Kind), Str: l.Str, Num: l.Num}
	}
	for i, e := range g.edges {
		jg.Edges[i] = jsonEdge{U: e.U, V: e.V, Directed: e.Directed}
	}
	return json.Marshal(jg)
}

// FromJSON parses a document produced by ToJSON into a fresh Graph.
func FromJSON(data []byte) (*Graph, error) {
	var jg jsonGraph
	if err := json.Unmarshal(data, &jg); err != nil {
		return nil, err
	}
	b := NewBuilder()
	for _, l := range jg.Labels {
		b.AddVertex(Label{Kind: LabelKind(l.Kind), Str: l.Str, Num: l.Num})
	}
	for _, e := range jg.Edges {
		if _, err := b.AddEdge(e.U, e.V, e.Directed); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// FromEdgeList builds an undirected Graph with n vertices (unlabeled) and
// one edge per tuple, in order.
func FromEdgeList(n int, edges []EdgeTuple) (*Graph, error) {
	b := NewBuilder()
	for i := 0; i < n; i++ {
		b.AddVertex()
	}
	for _, e := range edges {
		if _, err := b.AddEdge(e.U, e.V, false); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// FromAdjList builds an undirected Graph from an adjacency list, adding one
// edge per (v, neighbor) pair where v <= neighbor to avoid double insertion
// of undirected edges listed symmetrically on both sides; callers that hold
// an asymmetric (already deduplicated) adjacency list should use
// FromEdgeList instead.
func FromAdjList(adj [][]VertexId) (*Graph, error) {
	b := NewBuilder()
	for i := 0; i < len(adj); i++ {
		b.AddVertex()
	}
	for v, nbrs := range adj {
		for _, w := range nbrs {
			if VertexId(v) <= w {
				if _, err := b.AddEdge(VertexId(v), w, false); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Build(), nil
}
