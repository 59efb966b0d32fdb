// Package simpath builds the unreduced, ordered BDD for the spanning-
// connected function of a graph, following Knuth's suggested solution to
// Exercise 55 of TAOCP 7.1.4 (the "simpath" family of frontier
// algorithms): one internal node per surviving partition of the touched
// vertices, expanded layer by layer over the edge order.
//
// What:
//
//   - Build walks the edge order once, maintaining the set of partitions
//     of frontier vertices still reachable at each depth (package
//     partition), and allocates one bead per surviving partition.
//   - Early termination to the True/False sinks happens the moment a
//     partition is known to be fully spanning, or known to contain a
//     component that can never rejoin the rest of the graph.
//   - Ids are assigned during construction in creation order (depth 0
//     first) and relabeled once at the end so the usual BDD convention
//     holds: sinks are 0 and 1, and the root — the partition state
//     before testing edge 0 — is id size-1.
//
// Why:
//
//   - Without the early-termination rule the state space explored would
//     include every possible partition of every frontier, most of which
//     are dead ends; folding that detection into classification keeps
//     peak width bounded by the partition lattice that can still reach a
//     spanning answer.
//
// Complexity: depth d's work is O(|live partitions at d|); overall
// bounded by the sum of Bell numbers of each depth's frontier size.
//
// Errors:
//
//   - graph.ErrEmptyGraph, wrapped: Build requires at least one edge; the
//     algorithm's initial state is defined in terms of edge 0's first
//     endpoint and has no sensible meaning for m == 0.
package simpath
