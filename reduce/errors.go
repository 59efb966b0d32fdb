package reduce

import "errors"

// ErrInvariantViolation indicates the reduced BDD failed its own Validate
// check — a bug in this package, not a caller error.
var ErrInvariantViolation = errors.New("reduce: output BDD violates its invariants")
