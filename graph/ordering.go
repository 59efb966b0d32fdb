package graph

import (
	"container/heap"
	"fmt"
	"sort"
)

// pqItem is a single entry in the BFS ordering heap: a vertex discovered
// at distance dist from root, with seq recording the order it was pushed.
// Ties in dist are broken by seq, giving a deterministic ordering that
// does not depend on any relation over V itself.
type pqItem[V comparable] struct {
	dist int
	seq  int
	v    V
}

// vertexPQ is a min-heap of pqItem ordered by (dist, seq) ascending,
// following the nodeItem/nodePQ shape used by the dijkstra and
// prim_kruskal packages.
type vertexPQ[V comparable] []pqItem[V]

func (pq vertexPQ[V]) Len() int { return len(pq) }
func (pq vertexPQ[V]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}
func (pq vertexPQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *vertexPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(pqItem[V])) }

func (pq *vertexPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// OrderVertices performs BFS from root, returning a bijection V <-> {0,...,n-1}
// as the sequence of vertices in visit order. Ties in BFS distance are
// broken by insertion order into the priority queue (spec section 4.A),
// not by any ordering relation on V. Vertices not reachable from root are
// appended after the BFS, in the graph's insertion order.
//
// Complexity: O((V+E) log V).
func OrderVertices[V comparable](g *Graph[V], root V) ([]V, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %v is not a vertex of the graph", ErrMalformedGraph, root)
	}

	n := g.Len()
	closed := make(map[V]bool, n)
	pq := make(vertexPQ[V], 0, n)
	seq := 0
	heap.Init(&pq)
	heap.Push(&pq, pqItem[V]{dist: 0, seq: seq, v: root})
	seq++

	ordering := make([]V, 0, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem[V])
		if closed[item.v] {
			continue
		}
		closed[item.v] = true
		ordering = append(ordering, item.v)
		for _, w := range g.Neighbors(item.v) {
			if !closed[w] {
				heap.Push(&pq, pqItem[V]{dist: item.dist + 1, seq: seq, v: w})
				seq++
			}
		}
	}
	for _, v := range g.order {
		if !closed[v] {
			ordering = append(ordering, v)
		}
	}
	return ordering, nil
}

// Edge is a pair of indices into a vertex ordering, with From < To.
type Edge struct {
	From int
	To   int
}

// OrderEdges scans vorder left to right and, for each vertex u at index
// ui, appends its neighbors with a strictly larger index, in ascending
// index order (spec section 3). Each undirected edge of g appears exactly
// once, as (min-index, max-index).
//
// Complexity: O(V + E log d) for the per-vertex neighbor sort.
func OrderEdges[V comparable](g *Graph[V], vorder []V) ([]Edge, error) {
	pos := make(map[V]int, len(vorder))
	for i, v := range vorder {
		pos[v] = i
	}

	edges := make([]Edge, 0, len(vorder))
	for ui, u := range vorder {
		higher := make([]int, 0)
		for _, w := range g.Neighbors(u) {
			wi, ok := pos[w]
			if !ok {
				return nil, fmt.Errorf("%w: neighbor %v of %v is absent from the supplied vertex order", ErrMalformedGraph, w, u)
			}
			if wi > ui {
				higher = append(higher, wi)
			}
		}
		sort.Ints(higher)
		for _, wi := range higher {
			edges = append(edges, Edge{From: ui, To: wi})
		}
	}
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}
	return edges, nil
}

// MakeFrontiers returns, for each edge i = (u,v) in edgeOrder, the
// inclusive index range {u, u+1, ..., v}: the set of vertices whose
// connectivity must still be tracked at that depth. This mirrors
// toy_bdd's make_frontiers; spec section 9 notes it is advisory only —
// package simpath classifies survival from the next edge's low endpoint,
// not from this set, which the Python source itself flagged as possibly
// wrong.
func MakeFrontiers(edgeOrder []Edge) [][]int {
	frontiers := make([][]int, len(edgeOrder))
	for i, e := range edgeOrder {
		f := make([]int, 0, e.To-e.From+1)
		for x := e.From; x <= e.To; x++ {
			f = append(f, x)
		}
		frontiers[i] = f
	}
	return frontiers
}
