package count

import (
	"math/big"

	"github.com/katalvlaran/spanbdd/bead"
)

// AllCounts returns, for every id in b, the number of satisfying
// assignments of the sub-function rooted at that id over the variables
// Var(id) through NVars-1 — not yet weighted by any
// variable skipped on the path from a parent down to it. Index False is
// always 0, index True is always 1.
//
// Complexity: O(Size()) big.Int additions and shifts.
func AllCounts(b *bead.BDD) []*big.Int {
	n := b.Size()
	c := make([]*big.Int, n)
	c[bead.False] = big.NewInt(0)
	c[bead.True] = big.NewInt(1)

	for k := 2; k < n; k++ {
		lo, hi := b.Low(k), b.High(k)
		loTerm := weighted(c[lo], b.Var(lo)-b.Var(k)-1)
		hiTerm := weighted(c[hi], b.Var(hi)-b.Var(k)-1)
		c[k] = new(big.Int).Add(loTerm, hiTerm)
	}
	return c
}

// weighted returns count * 2^skip, skip's free choice of variables that
// were never tested on the way to count's node.
func weighted(count *big.Int, skip int) *big.Int {
	return new(big.Int).Lsh(count, uint(skip))
}

// Total returns the number of satisfying assignments of the whole
// function b represents — the number of edge subsets of the graph b was
// built from that are spanning and connected.
func Total(b *bead.BDD) *big.Int {
	c := AllCounts(b)
	return weighted(c[b.RootID], b.Var(b.RootID))
}
