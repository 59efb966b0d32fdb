// Package graph holds the input side of the pipeline: a generic,
// adjacency-map graph over an opaque hashable vertex type, and the three
// deterministic orderings the rest of the pipeline consumes as protocol —
// BFS vertex order, lexicographic edge order, and per-edge frontier sets.
//
// What:
//
//   - Graph[V] is an undirected adjacency map over any comparable V.
//   - OrderVertices performs BFS from a caller-supplied root, breaking
//     ties by insertion order into the priority queue rather than by any
//     ordering relation on V (V need only be comparable, not Ordered).
//   - OrderEdges scans vertices in that order and, for each vertex,
//     lists its higher-indexed neighbors in ascending index.
//   - MakeFrontiers records, per edge, the inclusive index range the
//     construction stage must still keep live; spec section 9 notes this
//     set is advisory only — simpath classifies survival via the
//     next edge's low endpoint, not this set, but it's kept here because
//     callers may want it for diagnostics or tests.
//
// Errors:
//
//   - ErrMalformedGraph: adjacency references an unknown vertex, is
//     asymmetric, or the requested root is not in the graph.
//   - ErrEmptyGraph: the graph has no edges; simpath's frontier algorithm
//     has no edge 0 to seed from, so this is the caller's cue to answer
//     the trivial case directly via bead.Trivial instead of building.
package graph
