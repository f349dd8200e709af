// File: impl_path.go — Path(n) constructor.
//
// Contract: n >= 2 (else ErrTooFewVertices); adds n vertices and n-1 edges
// i->i+1.
package builder

import (
	"fmt"

	"github.com/katalvlaran/topokit/topograph"
)

// Path returns a Constructor building the n-vertex simple path P_n.
func Path(n int) Constructor {
	return func(b *topograph.Builder) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		ids := make([]topograph.VertexId, n)
		for i := 0; i < n; i++ {
			ids[i] = b.AddVertex()
		}
		for i := 0; i < n-1; i++ {
			if _, err := b.AddEdge(ids[i], ids[i+1], false); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
			}
		}
		return nil
	}
}
