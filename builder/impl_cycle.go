// File: impl_cycle.go — Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Adds n vertices 0..n-1, then edges i->(i+1)%n for i=0..n-1.
package builder

import (
	"fmt"

	"github.com/katalvlaran/topokit/topograph"
)

// Cycle returns a Constructor building the n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *topograph.Builder) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		ids := make([]topograph.VertexId, n)
		for i := 0; i < n; i++ {
			ids[i] = b.AddVertex()
		}
		for i := 0; i < n; i++ {
			if _, err := b.AddEdge(ids[i], ids[(i+1)%n], false); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
			}
		}
		return nil
	}
}
