// Package sample draws satisfying assignments of a BDD uniformly at
// random, weighted by the per-node solution counts package count
// computes — the generator half of Knuth's Algorithm C (TAOCP 7.1.4).
//
// What: Sample walks from the root down, at each internal node drawing a
// uniform integer below that node's total solution count and comparing it
// against the weighted count of the True branch to decide which child to
// descend into, filling any skipped variables along the way with a fair
// coin flip since the function does not depend on them.
//
// Why integer draws: the reference algorithm this is ported from compares
// rand()*count against a child's count using float64 arithmetic, which
// silently loses precision once count exceeds 2^53 — exactly the regime
// this package exists for, since it targets the same arbitrary-precision
// counts as package count. Drawing a uniform *big.Int in [0, count) via
// math/big's own Rand avoids that bias entirely.
package sample
