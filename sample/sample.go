package sample

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/spanbdd/bead"
)

// Sample draws one satisfying assignment of b uniformly at random, given
// the per-node solution counts from count.AllCounts(b). The result is the
// chosen value, 0 or 1, of every variable from 0 to b.NVars-1: for a BDD
// built by package simpath, x[i] == 1 means edge i is included in the
// sampled spanning-connected edge subset.
//
// Complexity: O(NVars) big.Int draws.
func Sample(b *bead.BDD, counts []*big.Int, rng *rand.Rand) ([]int, error) {
	if counts[b.RootID].Sign() == 0 {
		return nil, ErrNoSolutions
	}

	x := make([]int, b.NVars)
	k := b.RootID
	prevVar := -1
	for {
		v := b.Var(k)
		for skipped := prevVar + 1; skipped < v; skipped++ {
			x[skipped] = rng.Intn(2)
		}
		if b.IsSink(k) {
			if k == bead.True {
				return x, nil
			}
			return nil, ErrNoSolutions
		}
		prevVar = v

		lo, hi := b.Low(k), b.High(k)
		hiWeighted := new(big.Int).Lsh(counts[hi], uint(b.Var(hi)-v-1))
		draw := new(big.Int).Rand(rng, counts[k])

		if draw.Cmp(hiWeighted) < 0 {
			x[v] = 1
			k = hi
		} else {
			x[v] = 0
			k = lo
		}
	}
}
