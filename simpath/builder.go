package simpath

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spanbdd/bead"
	"github.com/katalvlaran/spanbdd/graph"
	"github.com/katalvlaran/spanbdd/partition"
)

// Provisional sink ids used during construction, matching the convention
// of the frontier algorithm this package is ported from: negative so they
// can never collide with a provisional internal-node id (which starts at
// 0 and only grows).
const (
	trueProvisional  = -2
	falseProvisional = -1
)

// content is one not-yet-relabeled bead: the edge index it branches on and
// the provisional ids of its two children.
type content struct {
	depth  int
	lo, hi int
}

// Build constructs the unreduced, ordered BDD deciding whether a subset of
// edgeOrder, read as 0/1 choices in order, forms a spanning connected
// subgraph of a graph with nVertices vertices (spec section 4.C). edgeOrder
// must come from graph.OrderEdges, or satisfy the same From < To and
// "vertex indices below the current edge are already fully discovered by
// earlier edges" property it guarantees.
//
// Build requires at least one edge. Callers with zero edges must decide
// the trivial case themselves, via bead.Trivial: a single vertex is
// trivially spanning-connected, a graph with >= 2 vertices and no edges
// never is.
func Build(nVertices int, edgeOrder []graph.Edge) (*bead.BDD, error) {
	m := len(edgeOrder)
	if m == 0 {
		return nil, fmt.Errorf("simpath: %w", graph.ErrEmptyGraph)
	}

	beads := map[int]content{}
	nextID := 0
	alloc := func() int {
		id := nextID
		nextID++
		return id
	}

	initID := alloc()
	live := map[int]partition.Partition{initID: partition.Initial(edgeOrder[0].From)}

	for d := 0; d < m; d++ {
		edge := edgeOrder[d]
		nextFrontierLow := nVertices
		if d+1 < m {
			nextFrontierLow = edgeOrder[d+1].From
		}

		cache := map[string]int{}
		next := map[int]partition.Partition{}

		// classify maps a post-transition partition to the provisional id
		// it should be recorded against: an existing sink, a cached sibling
		// state already seen at this depth, or a freshly allocated id.
		classify := func(q partition.Partition) int {
			if partition.IsFullySpanning(q, nVertices) {
				return trueProvisional
			}
			if nextFrontierLow == nVertices || partition.HasSubsetBelow(q, nextFrontierLow) {
				return falseProvisional
			}
			key := partition.Key(q)
			if id, ok := cache[key]; ok {
				return id
			}
			id := alloc()
			cache[key] = id
			next[id] = q
			return id
		}

		// Iterate live in ascending provisional-id order, not Go's randomized
		// map order: classify calls alloc() for newly-discovered partitions,
		// so the order beads are visited in here fixes the id every child
		// gets, and thus the final relabeling of the whole BDD.
		liveIDs := make([]int, 0, len(live))
		for id := range live {
			liveIDs = append(liveIDs, id)
		}
		sort.Ints(liveIDs)

		for _, id := range liveIDs {
			p := live[id]
			lowState := partition.ExtendIfNew(p, edge.To)
			loID := classify(lowState)

			highState := partition.Merge(p, edge.From, edge.To)
			hiID := classify(highState)

			beads[id] = content{depth: d, lo: loID, hi: hiID}
		}

		live = next
	}
	if len(live) != 0 {
		return nil, fmt.Errorf("simpath: %w: %d partitions survived past the last edge unclassified", ErrInvariantViolation, len(live))
	}

	beads[falseProvisional] = content{depth: m, lo: falseProvisional, hi: falseProvisional}
	beads[trueProvisional] = content{depth: m, lo: trueProvisional, hi: trueProvisional}

	size := nextID + 2
	relabel := func(provisional int) int {
		switch provisional {
		case falseProvisional:
			return bead.False
		case trueProvisional:
			return bead.True
		default:
			return size - 1 - provisional
		}
	}

	nodes := make([]bead.Node, size)
	nodes[bead.False] = bead.Node{Var: m, Lo: bead.False, Hi: bead.False}
	nodes[bead.True] = bead.Node{Var: m, Lo: bead.True, Hi: bead.True}
	for provisional := 0; provisional < nextID; provisional++ {
		c := beads[provisional]
		nodes[relabel(provisional)] = bead.Node{
			Var: c.depth,
			Lo:  relabel(c.lo),
			Hi:  relabel(c.hi),
		}
	}

	b := bead.New(m, nodes, size-1)
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	return b, nil
}
