package spatial

import "errors"

// Sentinel errors for KD-tree validation and lookup (spec §3 "Spatial
// index", §4.4).
var (
	ErrEmptyTree           = errors.New("spatial: tree has no nodes")
	ErrRootOutOfBounds     = errors.New("spatial: root index out of bounds")
	ErrChildOutOfBounds    = errors.New("spatial: child index out of bounds")
	ErrSharedChild         = errors.New("spatial: node is claimed as a child by more than one parent")
	ErrNoValidChild        = errors.New("spatial: internal node has no valid child")
	ErrBadSplitAxis        = errors.New("spatial: split_axis must be 0 or 1")
	ErrLeafItemOutOfBounds = errors.New("spatial: leaf item references an out-of-range node id")
	ErrLeafSpanInvalid     = errors.New("spatial: leaf span is out of bounds or overlaps another leaf")

	// ErrNonFiniteQuery indicates Nearest was called with a NaN or infinite
	// query coordinate (spec §4.4: "Rejects NaN/infinite query coordinates").
	ErrNonFiniteQuery = errors.New("spatial: query coordinate is not finite")
)
