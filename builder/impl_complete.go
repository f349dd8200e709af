// File: impl_complete.go — Complete(n) and CompleteBipartite(n1,n2)
// constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/topokit/topograph"
)

// Complete returns a Constructor building the complete simple graph K_n
// (n >= 1). Pairs are emitted in lexicographic (i,j), i<j order.
func Complete(n int) Constructor {
	return func(b *topograph.Builder) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]topograph.VertexId, n)
		for i := 0; i < n; i++ {
			ids[i] = b.AddVertex()
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := b.AddEdge(ids[i], ids[j], false); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor building K_{n1,n2}: n1 left
// vertices (added first, ids 0..n1-1) fully joined to n2 right vertices
// (ids n1..n1+n2-1).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *topograph.Builder) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("CompleteBipartite: n1=%d, n2=%d (each must be >= %d): %w",
				n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := make([]topograph.VertexId, n1)
		for i := 0; i < n1; i++ {
			left[i] = b.AddVertex()
		}
		right := make([]topograph.VertexId, n2)
		for j := 0; j < n2; j++ {
			right[j] = b.AddVertex()
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if _, err := b.AddEdge(left[i], right[j], false); err != nil {
					return fmt.Errorf("CompleteBipartite: AddEdge(L%d,R%d): %w", i, j, err)
				}
			}
		}
		return nil
	}
}
