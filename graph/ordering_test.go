package graph

import (
	"errors"
	"reflect"
	"testing"
)

// buildSquare builds the 4-vertex, 4-edge cycle A-B-D-C-A (a 2x2 grid's
// outline) used by several scenarios in spec section 8.
func buildSquare() *Graph[string] {
	g := NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")
	return g
}

func TestOrderVertices_BFSFromCorner(t *testing.T) {
	g := buildSquare()
	order, err := OrderVertices(g, "A")
	if err != nil {
		t.Fatalf("OrderVertices: %v", err)
	}
	if order[0] != "A" {
		t.Fatalf("order[0] = %v; want A (the root)", order[0])
	}
	if len(order) != 4 {
		t.Fatalf("len(order) = %d; want 4", len(order))
	}
}

func TestOrderVertices_UnknownRoot(t *testing.T) {
	g := buildSquare()
	if _, err := OrderVertices(g, "Z"); !errors.Is(err, ErrMalformedGraph) {
		t.Fatalf("err = %v; want ErrMalformedGraph", err)
	}
}

func TestOrderVertices_Asymmetric(t *testing.T) {
	g := NewGraph[string]()
	g.AddVertex("A")
	g.AddVertex("B")
	g.adj["A"] = []string{"B"} // one-directional: asymmetric on purpose
	if _, err := OrderVertices(g, "A"); !errors.Is(err, ErrMalformedGraph) {
		t.Fatalf("err = %v; want ErrMalformedGraph", err)
	}
}

// TestOrderEdges_SingleEdge covers spec section 8 scenario 2: V={a,b}, E={(a,b)}.
func TestOrderEdges_SingleEdge(t *testing.T) {
	g := NewGraph[string]()
	g.AddEdge("a", "b")
	vorder, err := OrderVertices(g, "a")
	if err != nil {
		t.Fatalf("OrderVertices: %v", err)
	}
	edges, err := OrderEdges(g, vorder)
	if err != nil {
		t.Fatalf("OrderEdges: %v", err)
	}
	want := []Edge{{From: 0, To: 1}}
	if !reflect.DeepEqual(edges, want) {
		t.Fatalf("edges = %v; want %v", edges, want)
	}
}

// TestOrderEdges_EmptyGraph covers spec section 8 scenario 6: no edges at all.
func TestOrderEdges_EmptyGraph(t *testing.T) {
	g := NewGraph[string]()
	g.AddVertex("a")
	g.AddVertex("b")
	vorder, _ := OrderVertices(g, "a")
	if _, err := OrderEdges(g, vorder); !errors.Is(err, ErrEmptyGraph) {
		t.Fatalf("err = %v; want ErrEmptyGraph", err)
	}
}

// TestOrderEdges_Triangle covers the K3 scenario: 3 edges, each vertex
// pair appearing exactly once, with From < To throughout.
func TestOrderEdges_Triangle(t *testing.T) {
	g := NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("a", "c")
	vorder, err := OrderVertices(g, "a")
	if err != nil {
		t.Fatalf("OrderVertices: %v", err)
	}
	edges, err := OrderEdges(g, vorder)
	if err != nil {
		t.Fatalf("OrderEdges: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("len(edges) = %d; want 3", len(edges))
	}
	for _, e := range edges {
		if e.From >= e.To {
			t.Errorf("edge %+v does not satisfy From < To", e)
		}
	}
}

func TestMakeFrontiers(t *testing.T) {
	edges := []Edge{{From: 0, To: 2}, {From: 1, To: 3}}
	frontiers := MakeFrontiers(edges)
	want := [][]int{{0, 1, 2}, {1, 2, 3}}
	if !reflect.DeepEqual(frontiers, want) {
		t.Fatalf("frontiers = %v; want %v", frontiers, want)
	}
}
