// Package topoerr declares the shared sentinel error taxonomy used across
// every topokit package: topograph, topodfs, planarity, mesh, dual, order,
// spqr, mcflow, layout, and worker.
//
// Each package re-exports the sentinels it raises under its own name (for
// example planarity.ErrBadInput = topoerr.ErrBadInput) so callers can keep
// using errors.Is against a package-local symbol. Centralizing the values
// here keeps the error-kind taxonomy consistent across the whole pipeline:
// BadInput, BadRotation, LayoutInfeasible, PlanarizationFailed, Cancelled,
// Internal.
package topoerr

import "errors"

// Sentinel errors for the topokit error-kind taxonomy.
var (
	// ErrBadInput indicates an invalid vertex/edge id, a disallowed self-loop
	// or directed edge, or a malformed payload. Never retried.
	ErrBadInput = errors.New("topokit: bad input")

	// ErrBadRotation indicates a rotation system inconsistent with a graph's
	// adjacency (multiplicity or endpoint mismatch). Raised by mesh
	// construction; non-recoverable.
	ErrBadRotation = errors.New("topokit: bad rotation system")

	// ErrLayoutInfeasible indicates the orthogonal bend-flow network has no
	// feasible solution. Callers may fall back to straight-line layout.
	ErrLayoutInfeasible = errors.New("topokit: layout infeasible")

	// ErrPlanarizationFailed indicates edge reinsertion could not find any
	// dual path (e.g. a disconnected mesh). Callers may fall back to a raw
	// relaxation layout.
	ErrPlanarizationFailed = errors.New("topokit: planarization failed")

	// ErrCancelled is a distinguished flag converted to a terminal error
	// event with message "Computation cancelled"; never surfaced as a result.
	ErrCancelled = errors.New("topokit: computation cancelled")

	// ErrInternal indicates an assertion violation (Euler check, face
	// closure, twin pairing). Non-recoverable; reported verbatim.
	ErrInternal = errors.New("topokit: internal invariant violated")
)
