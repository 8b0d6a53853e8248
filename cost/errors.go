package cost

import "errors"

var (
	// ErrBadBucketSize marks a non-positive bucket size at construction.
	ErrBadBucketSize = errors.New("cost: bucket_size_sec must be positive")

	// ErrNonFiniteTraversal marks a composed traversal that is NaN or
	// negative — a hard engine error, never a query-time recoverable state
	// (spec §4.7 step 5).
	ErrNonFiniteTraversal = errors.New("cost: traversal is non-finite or negative")

	// ErrEdgeBlocked marks an edge whose live multiplier is +Inf (spec §4.7
	// step 4) or whose turn transition is forbidden by a negative penalty
	// (spec §4.7 "Turn costs").
	ErrEdgeBlocked = errors.New("cost: edge blocked")
)
