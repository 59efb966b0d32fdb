// Package reduce collapses an ordered BDD produced by package simpath into
// its canonical ROBDD form: no node with Lo == Hi survives, and no two
// distinct nodes compute the same function (spec section 4.D).
//
// What: Reduce walks nodes from the sinks upward (ids already run children-
// before-parents, per the builder's relabeling), merging any node whose two
// children are already identical into its surviving child, and merging any
// two nodes that share the same (Var, Lo, Hi) triple after that
// redirection into one representative. A final compaction renumbers the
// survivors so ids are dense and the size-1 root convention holds.
//
// Why: simpath's construction already avoids exploring partitions that are
// distinguishable-but-pointless, but it does not dedup nodes that happen to
// reach the same pair of children through different partitions, nor nodes
// where the variable test turned out not to matter. Reduction is the
// classical fixup for both (Knuth TAOCP 7.1.4, the "reduce" step of every
// ROBDD construction).
//
// Complexity: O(Size()) with a single pass plus a hash-map cache, since
// children are always already-reduced by the time a parent is visited.
package reduce
