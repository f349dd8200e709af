// File: impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model: a 2D orthogonal grid, 4-neighborhood, vertices added in
// row-major order (vertex id = r*cols+c), edges to the right and bottom
// neighbor of each cell where present.
package builder

import (
	"fmt"

	"github.com/katalvlaran/topokit/topograph"
)

// Grid returns a Constructor building a rows x cols orthogonal grid graph.
func Grid(rows, cols int) Constructor {
	return func(b *topograph.Builder) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := make([]topograph.VertexId, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = b.AddVertex()
			}
		}
		at := func(r, c int) topograph.VertexId { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := b.AddEdge(at(r, c), at(r, c+1), false); err != nil {
						return fmt.Errorf("Grid: right AddEdge(%d,%d): %w", r, c, err)
					}
				}
				if r+1 < rows {
					if _, err := b.AddEdge(at(r, c), at(r+1, c), false); err != nil {
						return fmt.Errorf("Grid: bottom AddEdge(%d,%d): %w", r, c, err)
					}
				}
			}
		}
		return nil
	}
}
