// Package search implements the reversible cycle-extension engine that
// enumerates Hamiltonian cycles of a simple undirected graph.
//
// The package decomposes into four collaborating pieces, described in
// arcgraph.go (the reversible adjacency store), analyzer.go (the DFS-based
// pruning oracle), extender.go (forced degree-2 segment absorption), and
// driver.go (anchor choice, unwinding, and the optional pruning pass). None
// of the four hold any package-level state; every operation is a method on
// a *State built by AllocateState.
package search

import "errors"

// Sentinel errors of this package. Internal search contradictions are never
// reported as errors — they are routine transitions consumed by the
// driver's unwind logic.
var (
	// ErrOutOfMemory names the out-of-memory status. No function in this
	// package returns it; a failed Go allocation panics instead.
	ErrOutOfMemory = errors.New("search: out of memory")

	// ErrInvalidName is returned when a graph name exceeds MaxTitleLength.
	ErrInvalidName = errors.New("search: invalid graph name")

	// ErrTooManyVertices is returned when a requested vertex count exceeds
	// MaxVertices.
	ErrTooManyVertices = errors.New("search: too many vertices")

	// ErrMissingReference is returned by Init when g is nil or its vertex
	// count differs from the one the State was allocated for. The search
	// entry points do not check for a bound graph.
	ErrMissingReference = errors.New("search: state has no bound graph")

	// ErrTimingError names the out-of-sequence status. No function in this
	// package returns it: the search methods do not check the order in
	// which they are called.
	ErrTimingError = errors.New("search: called out of sequence")

	// ErrUnsupportedGraph is returned by FromCore when the source
	// core.Graph is directed or carries a directed edge: the
	// cycle-extension engine only operates on simple undirected graphs.
	ErrUnsupportedGraph = errors.New("search: graph must be simple and undirected")
)
