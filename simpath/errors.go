package simpath

import "errors"

// ErrInvariantViolation indicates the constructed BDD failed its own
// Validate check — a bug in this package, not a caller error.
var ErrInvariantViolation = errors.New("simpath: constructed BDD violates its invariants")
