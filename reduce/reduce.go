package reduce

import (
	"fmt"

	"github.com/katalvlaran/spanbdd/bead"
)

// key identifies a node by the triple that determines its function once
// its children are already reduced: the variable it tests and the two
// (already-canonical) child ids.
type key struct {
	v, lo, hi int
}

// Reduce returns the canonical ROBDD computing the same function as b,
// collapsing redundant tests (Lo == Hi) and duplicate nodes (spec section
// 4.D). b is not modified.
//
// Reduce relies on the builder's id convention — every node's children
// have strictly smaller ids than the node itself — to process children
// before parents in a single increasing pass, rather than sorting layers
// by variable as the reference implementation this is ported from does.
func Reduce(b *bead.BDD) (*bead.BDD, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("reduce: input BDD is invalid: %w", err)
	}

	size := b.Size()
	redirect := make([]int, size)
	redirect[bead.False] = bead.False
	redirect[bead.True] = bead.True

	cache := make(map[key]int, size)
	var survivors []int // original ids of surviving internal nodes, increasing

	for k := 2; k < size; k++ {
		n := b.Nodes[k]
		lo := redirect[n.Lo]
		hi := redirect[n.Hi]
		if lo == hi {
			redirect[k] = lo
			continue
		}
		kk := key{n.Var, lo, hi}
		if existing, ok := cache[kk]; ok {
			redirect[k] = existing
			continue
		}
		redirect[k] = k
		cache[kk] = k
		survivors = append(survivors, k)
	}

	newID := make(map[int]int, len(survivors)+2)
	newID[bead.False] = bead.False
	newID[bead.True] = bead.True
	for i, orig := range survivors {
		newID[orig] = i + 2
	}
	remap := func(orig int) int { return newID[redirect[orig]] }

	nodes := make([]bead.Node, len(survivors)+2)
	nodes[bead.False] = b.Nodes[bead.False]
	nodes[bead.True] = b.Nodes[bead.True]
	for i, orig := range survivors {
		n := b.Nodes[orig]
		nodes[i+2] = bead.Node{Var: n.Var, Lo: remap(n.Lo), Hi: remap(n.Hi)}
	}

	root := newID[redirect[b.RootID]]
	out := bead.New(b.NVars, nodes, root)
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	return out, nil
}
