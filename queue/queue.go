package queue

import "github.com/taro-engine/taro/timetick"

// Queue is the pooled indexed binary min-heap of spec §4.8. Construct with
// New; it is not safe for concurrent use without external synchronization
// (one queue per in-flight search, per the planner's single-goroutine
// convention).
type Queue struct {
	edgeCount int
	heap      []uint32 // edge ids in heap order
	heapPos   []int32  // edge id -> index in heap, or -1 if absent
	states    []*State // edge id -> owned State while queued, nil otherwise
	pool      *pool
}

// New constructs a Queue over edge ids in [0, edgeCount). poolCapacity
// bounds the number of concurrently-live state objects (queued plus
// extracted-but-not-yet-recycled); it is typically edgeCount, but may be set
// lower to bound memory when callers recycle promptly.
func New(edgeCount int, poolCapacity int) *Queue {
	heapPos := make([]int32, edgeCount)
	for i := range heapPos {
		heapPos[i] = -1
	}
	return &Queue{
		edgeCount: edgeCount,
		heap:      make([]uint32, 0, edgeCount),
		heapPos:   heapPos,
		states:    make([]*State, edgeCount),
		pool:      newPool(poolCapacity),
	}
}

// Len returns the number of entries currently queued.
func (q *Queue) Len() int { return len(q.heap) }

// Capacity returns the pool's configured poolCapacity, the ceiling Insert
// reports against via ErrPoolExhausted.
func (q *Queue) Capacity() int { return q.pool.capacity() }

// Insert adds edge at the given key, or performs a decrease-key if edge is
// already queued and the new key is strictly better; a new key that is not
// strictly better is ignored (spec §4.8). Returns ErrEdgeOutOfRange for an
// out-of-bounds edge id, or the pool's ErrPoolExhausted if a brand-new entry
// cannot be allocated.
func (q *Queue) Insert(edge uint32, tick timetick.Tick, cost float64, pred uint32) error {
	if int(edge) >= q.edgeCount {
		return ErrEdgeOutOfRange
	}
	if existing := q.states[edge]; existing != nil {
		if less(cost, tick, edge, existing.Cost, existing.ArrivalTick, edge) {
			existing.Cost = cost
			existing.ArrivalTick = tick
			existing.Pred = pred
			q.siftUp(int(q.heapPos[edge]))
		}
		return nil
	}

	st, err := q.pool.acquire()
	if err != nil {
		return err
	}
	st.Edge = edge
	st.ArrivalTick = tick
	st.Cost = cost
	st.Pred = pred
	q.states[edge] = st

	pos := len(q.heap)
	q.heap = append(q.heap, edge)
	q.heapPos[edge] = int32(pos)
	q.siftUp(pos)
	return nil
}

// ExtractMin removes and returns the root entry. The returned *State remains
// valid until the caller calls Recycle on it. Returns ErrEmptyQueue if the
// queue has no entries.
func (q *Queue) ExtractMin() (*State, error) {
	if len(q.heap) == 0 {
		return nil, ErrEmptyQueue
	}
	rootEdge := q.heap[0]
	st := q.states[rootEdge]

	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.heap = q.heap[:last]
	q.heapPos[rootEdge] = -1
	q.states[rootEdge] = nil

	if last > 0 {
		q.heapPos[q.heap[0]] = 0
		q.siftDown(0)
	}
	return st, nil
}

// Recycle returns st to the pool. After this call st must not be read or
// written again.
func (q *Queue) Recycle(st *State) error {
	return q.pool.release(st)
}

// Clear resets all bookkeeping and recovers the full pool, even if some
// extracted states were never recycled (spec §4.8 "clear resets all indices
// and recovers the full pool even after leaks").
func (q *Queue) Clear() {
	q.heap = q.heap[:0]
	for i := range q.heapPos {
		q.heapPos[i] = -1
	}
	for i := range q.states {
		q.states[i] = nil
	}
	q.pool.resetAll()
}

func (q *Queue) key(i int) (cost float64, tick timetick.Tick, edge uint32) {
	e := q.heap[i]
	st := q.states[e]
	return st.Cost, st.ArrivalTick, e
}

func (q *Queue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		ci, ct, ce := q.key(i)
		pi, pt, pe := q.key(parent)
		if !less(ci, ct, ce, pi, pt, pe) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue) siftDown(i int) {
	n := len(q.heap)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n {
			lc, lt, le := q.key(left)
			sc, st, se := q.key(smallest)
			if less(lc, lt, le, sc, st, se) {
				smallest = left
			}
		}
		if right < n {
			rc, rt, re := q.key(right)
			sc, st, se := q.key(smallest)
			if less(rc, rt, re, sc, st, se) {
				smallest = right
			}
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}

func (q *Queue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.heapPos[q.heap[i]] = int32(i)
	q.heapPos[q.heap[j]] = int32(j)
}
