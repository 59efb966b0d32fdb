// Package count computes the exact number of satisfying assignments of a
// reduced (or unreduced — the algorithm does not require it) BDD, using
// Knuth's Algorithm C (TAOCP 7.1.4), adapted to track how many skipped
// variables separate a node from each of its children.
//
// What: AllCounts walks nodes from the sinks upward, accumulating at each
// id k the number of solutions over k's own variable and every later one,
// weighting each child's count by 2 raised to the number of
// variables skipped on the edge to it. The total for the whole function is
// the root's count weighted by the variables skipped before the root
// itself.
//
// Why big.Int: a BDD over n variables can have up to 2^n solutions; n is
// the edge count of the input graph, which this package places no bound
// on, so results are computed in arbitrary precision throughout rather
// than risking silent overflow in a fixed-width integer.
package count
