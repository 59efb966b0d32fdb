// Package spanbdd builds, reduces, counts, and samples the ordered binary
// decision diagram that decides whether a subset of a graph's edges is
// both spanning (touches every vertex) and connected.
//
// The function underlying the diagram takes one boolean variable per edge,
// in a fixed order: variable i is 1 if edge i is chosen. The pipeline is
// five packages applied in sequence:
//
//	graph    — orders a graph's vertices and edges deterministically
//	simpath  — builds the unreduced BDD via a frontier algorithm
//	reduce   — collapses it to the canonical ROBDD
//	count    — counts satisfying assignments exactly, in arbitrary precision
//	sample   — draws a satisfying assignment uniformly at random
//
// with package bead providing the BDD representation all five share, and
// package partition the canonical partition-of-frontier-vertices type
// simpath tracks connectivity with.
//
//	g := graph.NewGraph[string]()
//	g.AddEdge("a", "b")
//	g.AddEdge("b", "c")
//	g.AddEdge("a", "c")
//
//	vorder, _ := graph.OrderVertices(g, "a")
//	edges, _ := graph.OrderEdges(g, vorder)
//
//	built, _ := simpath.Build(len(vorder), edges)
//	b, _ := reduce.Reduce(built)
//
//	fmt.Println(count.Total(b)) // 4: any 2 of the triangle's 3 edges, or all 3
//
// A graph with no edges never reaches simpath.Build, which requires at
// least one edge: callers answer that case directly with bead.Trivial,
// since whether the empty edge subset is spanning-connected depends only
// on whether the graph has exactly one vertex.
package spanbdd
