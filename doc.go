// Package topokit is a topology-first graph drawing kernel: planarity
// testing, half-edge mesh construction, dual-graph routing, SPQR/BC-tree
// decomposition, min-cost-flow-driven orthogonal layout, and a staged
// compute pipeline that ties them together for a caller that samples a
// large input graph, draws it, and reports its topological structure.
//
// Subpackages:
//
//	topograph/ — dense int-keyed Graph container, the shared data model
//	topodfs/   — biconnected components, articulation points, bridges, BC-tree
//	planarity/ — left-right planarity test with Kuratowski witness extraction
//	mesh/      — half-edge DCEL built from a planar embedding
//	dual/      — dual graph construction and multi-source routing
//	order/     — st-numbering and bipolar orientation
//	spqr/      — SPQR-tree triconnected decomposition
//	mcflow/    — min-cost flow (successive shortest augmenting paths)
//	layout/    — straight-line, orthogonal, and planarization layout synthesis
//	worker/    — the staged compute pipeline (sample, draw, report)
//	builder/   — deterministic topology constructors used by tests and datasets
//	topoerr/   — shared sentinel error taxonomy
//
// See cmd/topokit for a runnable single-shot CLI over the worker pipeline.
package topokit
