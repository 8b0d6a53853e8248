package queue

import "errors"

var (
	// ErrEdgeOutOfRange marks an Insert call with an edge id at or beyond
	// the configured edge_count. VisitedSet.MarkVisited does not return it;
	// it reports an out-of-range edge id as false.
	ErrEdgeOutOfRange = errors.New("queue: edge id out of range")

	// ErrEmptyQueue marks ExtractMin called on a queue with no entries.
	ErrEmptyQueue = errors.New("queue: extract_min on empty queue")

	// ErrPoolExhausted marks Insert needing a new state object when every
	// pooled slot is already live (either queued or extracted without a
	// matching Recycle).
	ErrPoolExhausted = errors.New("queue: state pool exhausted")

	// ErrNotOwned marks Recycle called with a state not currently owned by
	// this queue's pool (double-recycle, or a state from a different queue).
	ErrNotOwned = errors.New("queue: state not owned by this pool")
)
