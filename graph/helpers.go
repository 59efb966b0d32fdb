package graph

import "fmt"

func contains[V comparable](s []V, v V) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func errUnknownVertex[V comparable](v V) error {
	return fmt.Errorf("%w: adjacency references unregistered vertex %v", ErrMalformedGraph, v)
}

func errAsymmetric[V comparable](u, v V) error {
	return fmt.Errorf("%w: adjacency is not symmetric between %v and %v", ErrMalformedGraph, u, v)
}
