// File: impl_random_sparse.go — RandomSparse(n, p, seed) constructor
// (Erdos-Renyi G(n,p)).
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/topokit/topograph"
)

// RandomSparse returns a Constructor building an Erdos-Renyi random graph on
// n vertices where each of the n*(n-1)/2 candidate pairs is included
// independently with probability p. The draw sequence is seeded, so the
// same (n, p, seed) always produces the same edge set.
func RandomSparse(n int, p float64, seed int64) Constructor {
	return func(b *topograph.Builder) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g out of [0,1]: %w", p, ErrInvalidProbability)
		}
		ids := make([]topograph.VertexId, n)
		for i := 0; i < n; i++ {
			ids[i] = b.AddVertex()
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					if _, err := b.AddEdge(ids[i], ids[j], false); err != nil {
						return fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", i, j, err)
					}
				}
			}
		}
		return nil
	}
}
