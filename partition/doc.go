// Package partition represents, and canonicalizes, a partition of the
// already-touched frontier vertices into maximal connected components
// (spec section 4.B). It is a pure, allocation-light helper used by
// package simpath; it holds no BDD-specific knowledge of its own.
//
// A Partition is a sorted slice of sorted, disjoint, non-empty int
// slices — its canonical form, suitable as a map key via Key(). The
// three operations below are exactly the ones spec section 4.B names:
//
//   - ExtendIfNew appends a new singleton if w is not yet present.
//   - Merge unions the subsets containing u and v into one.
//   - Prune drops every vertex below a retained threshold, and reports
//     whether doing so emptied any subset. simpath does not call it: it
//     detects a component that can never rejoin the rest of the graph
//     with the non-destructive HasSubsetBelow.
package partition
