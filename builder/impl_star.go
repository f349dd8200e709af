// File: impl_star.go — Star(n) and Wheel(n) constructors.
//
// Star: one hub (vertex 0) connected to n-1 leaves.
// Wheel: a cycle of n-1 rim vertices plus one hub connected to every rim
// vertex (vertex 0 is the hub, matching Star's convention).
package builder

import (
	"fmt"

	"github.com/katalvlaran/topokit/topograph"
)

// Star returns a Constructor building a star with hub vertex 0 and n-1
// leaves. n is the total vertex count and must be >= 2.
func Star(n int) Constructor {
	return func(b *topograph.Builder) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		hub := b.AddVertex()
		for i := 1; i < n; i++ {
			leaf := b.AddVertex()
			if _, err := b.AddEdge(hub, leaf, false); err != nil {
				return fmt.Errorf("Star: AddEdge(hub,%d): %w", i, err)
			}
		}
		return nil
	}
}

// Wheel returns a Constructor building a wheel graph: a rim cycle of n-1
// vertices plus a hub (vertex 0) adjacent to every rim vertex. n is the
// total vertex count and must be >= 4.
func Wheel(n int) Constructor {
	return func(b *topograph.Builder) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		hub := b.AddVertex()
		rim := make([]topograph.VertexId, n-1)
		for i := range rim {
			rim[i] = b.AddVertex()
		}
		for i := range rim {
			if _, err := b.AddEdge(rim[i], rim[(i+1)%len(rim)], false); err != nil {
				return fmt.Errorf("Wheel: rim AddEdge(%d,%d): %w", i, (i+1)%len(rim), err)
			}
		}
		for i := range rim {
			if _, err := b.AddEdge(hub, rim[i], false); err != nil {
				return fmt.Errorf("Wheel: spoke AddEdge(hub,%d): %w", i, err)
			}
		}
		return nil
	}
}
