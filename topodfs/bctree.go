// File: bctree.go — builds the bipartite block-cut tree from a
// BCResult: one node per biconnected block and one node per articulation
// (cut) vertex, with a tree edge between a block node and a cut node iff
// that cut vertex is incident to some edge of that block.
package topodfs

import (
	"github.com/katalvlaran/topokit/topograph"
)

// NodeKind discriminates a BCTree node.
type NodeKind int

const (
	// BlockNode holds a biconnected block's edge set.
	BlockNode NodeKind = iota
	// CutNode holds a single articulation vertex.
	CutNode
)

// BCTree is the block-cut tree over a graph's biconnected decomposition.
type BCTree struct {
	// Kind[i] classifies node i as BlockNode or CutNode.
	Kind []NodeKind
	// Adj[i] lists the tree-neighbor node indices of node i.
	Adj [][]int
	// BlockNodes maps a Blocks index (from BCResult) to its tree node index.
	BlockNodes []int
	// CutNodes maps a position in sorted articulation-vertex order to its
	// tree node index; CutVertex gives the VertexId for a given tree node.
	CutNodes  []int
	CutVertex map[int]topograph.VertexId
}

// BuildBCTree constructs the block-cut tree of g from a precomputed
// BCResult (as returned by topodfs.BiconnectedComponents).
//
// Complexity: O(V+E).
func BuildBCTree(g *topograph.Graph, bcc *BCResult) *BCTree {
	tree := &BCTree{CutVertex: make(map[int]topograph.VertexId)}

	tree.BlockNodes = make([]int, len(bcc.Blocks))
	for i := range bcc.Blocks {
		node := len(tree.Kind)
		tree.Kind = append(tree.Kind, BlockNode)
		tree.Adj = append(tree.Adj, nil)
		tree.BlockNodes[i] = node
	}

	cutNodeOf := make(map[topograph.VertexId]int, len(bcc.ArticulationPoints))
	tree.CutNodes = make([]int, len(bcc.ArticulationPoints))
	for i, v := range bcc.ArticulationPoints {
		node := len(tree.Kind)
		tree.Kind = append(tree.Kind, CutNode)
		tree.Adj = append(tree.Adj, nil)
		tree.CutNodes[i] = node
		tree.CutVertex[node] = v
		cutNodeOf[v] = node
	}

	linked := make(map[[2]int]bool)
	for blockIdx, edges := range bcc.Blocks {
		blockNode := tree.BlockNodes[blockIdx]
		for _, eid := range edges {
			rec, ok := g.Edge(eid)
			if !ok {
				continue
			}
			for _, endpoint := range [2]topograph.VertexId{rec.U, rec.V} {
				cutNode, isCut := cutNodeOf[endpoint]
				if !isCut {
					continue
				}
				key := [2]int{blockNode, cutNode}
				if linked[key] {
					continue
				}
				linked[key] = true
				tree.Adj[blockNode] = append(tree.Adj[blockNode], cutNode)
				tree.Adj[cutNode] = append(tree.Adj[cutNode], blockNode)
			}
		}
	}

	return tree
}
