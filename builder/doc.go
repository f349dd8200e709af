// Constructors in this package assemble fixtures for the planarity/mesh/layout
// pipeline in tests and for ad-hoc experimentation, including the small
// canonical shapes exercised end-to-end elsewhere: a triangle (Cycle(3)),
// K5 (Complete(5)), K3,3 (CompleteBipartite(3,3)), and a 4x4 grid
// (Grid(4,4)).
package builder
