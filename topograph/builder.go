// File: builder.go
// Role: mutable Builder that accumulates vertices/edges and freezes them
//       into an immutable Graph via Build(), a functional-options-free
//       "accumulate then freeze" pattern specialised to int ids.
// Determinism:
//   - VertexId/EdgeId assignment is strictly insertion order.
//   - Build() never reorders labels, edges, or adjacency.
package topograph

import "fmt"

// Builder accumulates vertices and edges for a single Graph. A zero
// Builder is usable; construct with NewBuilder for clarity.
type Builder struct {
	labels    []Label
	edges     []EdgeRecord
	adjacency [][]Incidence
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddVertex appends a new vertex with an optional label (zero or one Label
// argument; passing more than one is a programmer error and panics rather
// than returning an error for something only a caller's code can get
// wrong).
func (b *Builder) AddVertex(label ...Label) VertexId {
	if len(label) > 1 {
		panic("topograph: AddVertex accepts at most one label")
	}
	id := VertexId(len(b.labels))
	if len(label) == 1 {
		b.labels = append(b.labels, label[0])
	} else {
		b.labels = append(b.labels, Label{})
	}
	b.adjacency = append(b.adjacency, nil)
	return id
}

// AddEdge appends a new edge between u and v. Self-loops are permitted at
// this layer (downstream stages reject or tolerate them per their own
// options); invalid endpoints return ErrBadInput.
//
// Steps:
//  1. Validate u, v are in range.
//  2. Assign the next EdgeId in insertion order.
//  3. Append the canonical EdgeRecord.
//  4. Append one incidence to u (Dir resolved below) and one to v,
//     preserving insertion order at each vertex; a self-loop appends two
//     incidences to the same vertex.
func (b *Builder) AddEdge(u, v VertexId, directed bool) (EdgeId, error) {
	if int(u) < 0 || int(u) >= len(b.labels) {
		return 0, fmt.Errorf("topograph: AddEdge: invalid endpoint u=%d: %w", u, ErrBadInput)
	}
	if int(v) < 0 || int(v) >= len(b.labels) {
		return 0, fmt.Errorf("topograph: AddEdge: invalid endpoint v=%d: %w", v, ErrBadInput)
	}

	id := EdgeId(len(b.edges))
	b.edges = append(b.edges, EdgeRecord{ID: id, U: u, V: v, Directed: directed})

	uDir, vDir := DirUndirected, DirUndirected
	if directed {
		uDir, vDir = DirOut, DirIn
	}
	b.adjacency[u] = append(b.adjacency[u], Incidence{Edge: id, To: v, Dir: uDir})
	b.adjacency[v] = append(b.adjacency[v], Incidence{Edge: id, To: u, Dir: vDir})

	return id, nil
}

// Build freezes the accumulated vertices/edges into an immutable Graph.
// The Builder remains usable afterwards (Build copies, never hands out
// internal slices), though callers conventionally discard it.
func (b *Builder) Build() *Graph {
	labels := make([]Label, len(b.labels))
	copy(labels, b.labels)

	edges := make([]EdgeRecord, len(b.edges))
	copy(edges, b.edges)

	adjacency := make([][]Incidence, len(b.adjacency))
	for i, inc := range b.adjacency {
		adjacency[i] = append([]Incidence(nil), inc...)
	}

	return &Graph{labels: labels, edges: edges, adjacency: adjacency}
}
