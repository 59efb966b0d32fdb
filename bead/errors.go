package bead

import "errors"

// Sentinel errors for the bead arena.
var (
	// ErrInvariantViolation indicates a structural consistency check failed,
	// e.g. a child id was not strictly less than its parent's id after a
	// build or reduce pass. This always indicates a bug in an upstream
	// producer, never a caller input problem.
	ErrInvariantViolation = errors.New("bead: invariant violation")
)
