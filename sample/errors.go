package sample

import "errors"

// ErrNoSolutions is returned when a walk is asked to sample from a BDD
// whose root (or, mid-walk, an unreachable branch) has zero solutions.
var ErrNoSolutions = errors.New("sample: bdd has no satisfying assignments")
