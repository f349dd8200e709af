// File: validate.go — structural invariants a caller can assert on a built
// Mesh (twin involution, Euler's formula), useful in tests and as a
// cheap post-construction sanity check for worker pipeline stages.
package mesh

import "fmt"

// ValidateMesh checks: every half-edge's twin points back to it, Next/Prev
// are mutual inverses, and Euler's formula V - E + F = 1 + components holds,
// where components is the connected component count (reported by the
// caller, since Mesh itself does not track component count).
func ValidateMesh(m *Mesh, components int) error {
	for h := range m.Origin {
		if m.Twin[m.Twin[h]] != HalfEdgeId(h) {
			return fmt.Errorf("mesh: ValidateMesh: half-edge %d twin is not involutive", h)
		}
		if m.Prev[m.Next[h]] != HalfEdgeId(h) {
			return fmt.Errorf("mesh: ValidateMesh: half-edge %d next/prev mismatch", h)
		}
	}
	v := m.VertexCount()
	e := m.HalfEdgeCount() / 2
	f := m.FaceCount()
	if v-e+f != 1+components {
		return fmt.Errorf("mesh: ValidateMesh: Euler's formula violated: V=%d E=%d F=%d components=%d", v, e, f, components)
	}
	return nil
}
