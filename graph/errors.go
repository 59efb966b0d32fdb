package graph

import "errors"

// Sentinel errors for graph construction and ordering.
var (
	// ErrMalformedGraph indicates the adjacency map references an unknown
	// vertex, is not symmetric, or a requested root is not in the graph.
	ErrMalformedGraph = errors.New("graph: malformed graph")

	// ErrEmptyGraph indicates the graph has no edges. The frontier
	// construction in package simpath requires at least one edge to seed
	// its initial partition; callers must handle the trivial case (spec
	// section 7) themselves, typically via bead.Trivial.
	ErrEmptyGraph = errors.New("graph: graph has no edges")
)
