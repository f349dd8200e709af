// File: api.go
// Role: thin public entry-point for the builder package, mirroring the
//       teacher's single-orchestrator BuildGraph contract.
package builder

import (
	"fmt"

	"github.com/katalvlaran/topokit/topograph"
)

// Constructor applies a deterministic graph mutation against a shared
// topograph.Builder. Constructors MUST validate parameters early and return
// sentinel errors (never panic on data input), and MUST preserve
// determinism for the same parameters and call order.
type Constructor func(b *topograph.Builder) error

// Build creates a fresh topograph.Builder and applies each Constructor in
// order, returning the frozen Graph. Any constructor error is wrapped with
// "builder: %w" and returned immediately; no partial cleanup is attempted.
func Build(cons ...Constructor) (*topograph.Graph, error) {
	b := topograph.NewBuilder()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	return b.Build(), nil
}
