// File: safe.go — block extraction wrappers: sanitize directed/self-loop
// input per options, run biconnected decomposition, and decompose the
// selected block(s) into SPQR trees, remapping skeleton vertex/edge ids
// back onto the original graph.
package spqr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topokit/topodfs"
	"github.com/katalvlaran/topokit/topograph"
)

// Options configures DecomposeSafe/DecomposeAll.
type Options struct {
	TreatDirectedAsUndirected bool
	AllowSelfLoops            topodfs.SelfLoopPolicy
}

// Option is a functional option for Options.
type Option func(*Options)

// WithTreatDirectedAsUndirected coerces directed edges for this analysis.
func WithTreatDirectedAsUndirected() Option {
	return func(o *Options) { o.TreatDirectedAsUndirected = true }
}

// WithAllowSelfLoops sets the self-loop policy.
func WithAllowSelfLoops(p topodfs.SelfLoopPolicy) Option {
	return func(o *Options) { o.AllowSelfLoops = p }
}

func defaultOptions() Options {
	return Options{TreatDirectedAsUndirected: false, AllowSelfLoops: topodfs.SelfLoopReject}
}

func bccOptions(o Options) []topodfs.BCOption {
	var opts []topodfs.BCOption
	if o.TreatDirectedAsUndirected {
		opts = append(opts, topodfs.WithTreatDirectedAsUndirected())
	}
	opts = append(opts, topodfs.WithAllowSelfLoops(o.AllowSelfLoops))
	return opts
}

// DecomposeSafe runs biconnected decomposition on g and builds the SPQR
// tree of its largest block (by edge count; among equally large blocks,
// the one BiconnectedComponents closed first).
//
// Errors: ErrBadInput if g has no edges at all.
func DecomposeSafe(g *topograph.Graph, opts ...Option) (*Tree, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	bcc, err := topodfs.BiconnectedComponents(g, bccOptions(o)...)
	if err != nil {
		return nil, fmt.Errorf("spqr: DecomposeSafe: %w", err)
	}
	if len(bcc.Blocks) == 0 {
		return nil, fmt.Errorf("spqr: DecomposeSafe: graph has no edges: %w", ErrBadInput)
	}

	best := 0
	for i, b := range bcc.Blocks {
		if len(b) > len(bcc.Blocks[best]) {
			best = i
		}
	}
	return decomposeBlock(g, bcc.Blocks[best])
}

// DecomposeAll decomposes every biconnected block of g into its own SPQR
// tree, returning the forest plus the graph's articulation points.
func DecomposeAll(g *topograph.Graph, opts ...Option) (*Forest, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	bcc, err := topodfs.BiconnectedComponents(g, bccOptions(o)...)
	if err != nil {
		return nil, fmt.Errorf("spqr: DecomposeAll: %w", err)
	}

	f := &Forest{ArticulationPoints: bcc.ArticulationPoints}
	for _, block := range bcc.Blocks {
		tree, err := decomposeBlock(g, block)
		if err != nil {
			return nil, err
		}
		f.Trees = append(f.Trees, tree)
	}
	return f, nil
}

func decomposeBlock(g *topograph.Graph, block []topograph.EdgeId) (*Tree, error) {
	if len(block) == 1 {
		rec, _ := g.Edge(block[0])
		return &Tree{
			Nodes: []Node{{
				Kind:     QNode,
				Vertices: []topograph.VertexId{rec.U, rec.V},
				Edges:    []SkeletonEdge{{Kind: RealEdge, Real: rec.ID, U: rec.U, V: rec.V}},
			}},
			Adj: [][]int{nil},
		}, nil
	}

	seen := make(map[topograph.VertexId]bool)
	var vs []topograph.VertexId
	var es []SkeletonEdge
	for _, eid := range block {
		rec, ok := g.Edge(eid)
		if !ok {
			continue
		}
		if !seen[rec.U] {
			seen[rec.U] = true
			vs = append(vs, rec.U)
		}
		if !seen[rec.V] {
			seen[rec.V] = true
			vs = append(vs, rec.V)
		}
		es = append(es, SkeletonEdge{Kind: RealEdge, Real: rec.ID, U: rec.U, V: rec.V})
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })

	return Decompose(vs, es)
}

// Validate checks the structural properties an SPQR tree must satisfy:
// nodes-1 tree edges, connected, every virtual id paired exactly twice.
func Validate(t *Tree) error {
	n := len(t.Nodes)
	edgeCount := 0
	for _, adj := range t.Adj {
		edgeCount += len(adj)
	}
	edgeCount /= 2
	if n > 0 && edgeCount != n-1 {
		return fmt.Errorf("spqr: Validate: tree has %d nodes but %d edges: %w", n, edgeCount, ErrInternal)
	}

	visited := make([]bool, n)
	if n > 0 {
		stack := []int{0}
		visited[0] = true
		count := 1
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range t.Adj[v] {
				if !visited[w] {
					visited[w] = true
					count++
					stack = append(stack, w)
				}
			}
		}
		if count != n {
			return fmt.Errorf("spqr: Validate: tree is not connected (%d/%d reachable): %w", count, n, ErrInternal)
		}
	}

	virtualOccurrences := make(map[int]int)
	for _, node := range t.Nodes {
		for _, e := range node.Edges {
			if e.Kind == VirtualEdge {
				virtualOccurrences[e.Virtual]++
			}
		}
	}
	for vid, count := range virtualOccurrences {
		if count != 2 {
			return fmt.Errorf("spqr: Validate: virtual id %d appears %d times, want 2: %w", vid, count, ErrInternal)
		}
	}

	for i, node := range t.Nodes {
		if node.Kind == RNode {
			if u, v, ok := findSplitPair(pending{vs: node.Vertices, es: node.Edges}); ok {
				return fmt.Errorf("spqr: Validate: R node %d still has split pair (%d,%d): %w", i, u, v, ErrInternal)
			}
		}
	}

	return nil
}
