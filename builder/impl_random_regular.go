// File: impl_random_regular.go — RandomRegular(n, d, seed) constructor
// (pairing-model random d-regular graph, rejection-sampled).
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/topokit/topograph"
)

// maxRandomRegularAttempts bounds the pairing-model retry loop: a random
// stub pairing occasionally produces a self-loop or parallel edge, which is
// rejected and redrawn from scratch rather than patched in place (patching
// biases the resulting degree sequence).
const maxRandomRegularAttempts = 64

// RandomRegular returns a Constructor building a random d-regular simple
// graph on n vertices via the configuration (pairing) model: n*d stubs are
// shuffled and paired, the draw is rejected and retried on any self-loop or
// repeated pair, up to maxRandomRegularAttempts times. The draw sequence is
// seeded, so the same (n, d, seed) always produces the same edge set.
func RandomRegular(n, d int, seed int64) Constructor {
	return func(b *topograph.Builder) error {
		if n < 1 {
			return fmt.Errorf("RandomRegular: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("RandomRegular: d=%d out of [0,%d): %w", d, n, ErrInvalidDegree)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("RandomRegular: n*d=%d is odd: %w", n*d, ErrInvalidDegree)
		}

		rng := rand.New(rand.NewSource(seed))
		edges, err := drawRegularPairing(n, d, rng)
		if err != nil {
			return fmt.Errorf("RandomRegular: %w", err)
		}

		ids := make([]topograph.VertexId, n)
		for i := 0; i < n; i++ {
			ids[i] = b.AddVertex()
		}
		for _, e := range edges {
			if _, err := b.AddEdge(ids[e[0]], ids[e[1]], false); err != nil {
				return fmt.Errorf("RandomRegular: AddEdge(%d,%d): %w", e[0], e[1], err)
			}
		}
		return nil
	}
}

func drawRegularPairing(n, d int, rng *rand.Rand) ([][2]int, error) {
	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}

	for attempt := 0; attempt < maxRandomRegularAttempts; attempt++ {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int]bool, len(stubs)/2)
		edges := make([][2]int, 0, len(stubs)/2)
		ok := true
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				ok = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if seen[key] {
				ok = false
				break
			}
			seen[key] = true
			edges = append(edges, key)
		}
		if ok {
			return edges, nil
		}
	}
	return nil, fmt.Errorf("no valid pairing found after %d attempts: %w", maxRandomRegularAttempts, ErrConstructFailed)
}
