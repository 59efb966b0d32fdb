// Package bead defines the BDD node arena: the (variable, lo, hi) triples
// ("beads", after Knuth's terminology in TAOCP 7.1.4) that make up a binary
// decision diagram, the two fixed sink ids, and the structural invariants
// every stage of the pipeline (simpath, reduce, count, sample) relies on.
//
// What:
//
//   - Node is a single (Var, Lo, Hi) triple.
//   - BDD is an immutable, append-only array of Node plus a RootID.
//   - Sinks occupy fixed ids False=0, True=1 and self-loop at Var==NVars.
//   - Validate checks the DAG, ordering, and sink-convention invariants
//     from spec section 3 and returns ErrInvariantViolation on failure.
//
// Why:
//
//   - Every other package (simpath, reduce, count, sample) only ever
//     touches a BDD through integer ids into this arena; no pointers are
//     ever materialized, which keeps both construction and reduction
//     allocation-light on the large node counts frontier-style BDDs
//     produce.
//
// Complexity:
//
//   - Validate: O(size).
//
// Errors:
//
//   - ErrInvariantViolation: a structural invariant does not hold.
package bead
