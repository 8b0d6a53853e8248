package planner

import (
	"errors"

	"github.com/taro-engine/taro/cost"
	"github.com/taro-engine/taro/errs"
	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/queue"
	"github.com/taro-engine/taro/timetick"
)

// wrapPoolExhausted bridges the queue package's local ErrPoolExhausted
// sentinel into the closed spec §7 error taxonomy's PoolExhaustedError, so a
// facade caller's errors.Is(err, errs.ErrPoolExhausted) and
// errors.As(&errs.PoolExhaustedError{}) both succeed regardless of which
// internal pool reported the exhaustion.
func wrapPoolExhausted(err error, capacity int) error {
	if errors.Is(err, queue.ErrPoolExhausted) {
		return errs.NewPoolExhaustedError(capacity)
	}
	return err
}

// noPredecessor marks a seed edge (one reached directly from the search
// source, with no incoming-edge predecessor).
const noPredecessor = ^uint32(0)

// run holds the mutable, single-use state of one edge-based search. Each
// planner.Route or each source-row of a Matrix sweep gets its own run (or
// reuses one via reset), so concurrent searches never share mutable state.
type run struct {
	store   *model.Store
	engine  *cost.Engine
	heur    Heuristic
	q       *queue.Queue
	visited *queue.VisitedSet
	states  []searchState
	tracker *tracker
}

func newRun(store *model.Store, engine *cost.Engine, heur Heuristic, budget Budget) *run {
	edgeCount := int(store.EdgeCount())
	return &run{
		store:   store,
		engine:  engine,
		heur:    heur,
		q:       queue.New(edgeCount, edgeCount),
		visited: queue.NewVisitedSet(edgeCount),
		states:  make([]searchState, edgeCount),
		tracker: newTracker(budget),
	}
}

func (r *run) reset() {
	r.q.Clear()
	r.visited.Clear()
	for i := range r.states {
		r.states[i] = searchState{}
	}
	r.tracker.startRow()
}

// seed inserts every outgoing edge of source as an initial label. A blocked
// seed edge is silently skipped, not a hard error: the search may still
// reach its target via a different first hop.
func (r *run) seed(source uint32, departureTick timetick.Tick, estimate func(uint32) float64) error {
	start, end, err := r.store.OutgoingEdges(source)
	if err != nil {
		return err
	}
	for e := start; e < end; e++ {
		trav, exitTick, terr := r.engine.Traverse(e, departureTick)
		if terr != nil {
			continue
		}
		r.states[e] = searchState{trueCost: trav, arrivalTick: exitTick, hasPred: false, seen: true}
		if err := r.tracker.chargeLabel(); err != nil {
			return err
		}
		f := trav + estimate(e)
		if err := r.q.Insert(e, exitTick, f, noPredecessor); err != nil {
			return wrapPoolExhausted(err, r.q.Capacity())
		}
		if err := r.tracker.checkFrontier(r.q.Len()); err != nil {
			return err
		}
	}
	return nil
}

// relax expands every outgoing edge from edge's head node, folding in turn
// penalties against edge as the incoming transition.
func (r *run) relax(edge uint32, estimate func(uint32) float64) error {
	node := r.store.EdgeTarget(edge)
	start, end, err := r.store.OutgoingEdges(node)
	if err != nil {
		return err
	}
	g := r.states[edge].trueCost
	arrival := r.states[edge].arrivalTick

	for next := start; next < end; next++ {
		trav, _, terr := r.engine.Traverse(next, arrival)
		if terr != nil {
			continue // blocked edge
		}
		adjusted, terr := r.engine.ApplyTurnPenalty(edge, next, trav)
		if terr != nil {
			continue // forbidden transition
		}
		newCost := g + adjusted
		if r.visited.IsVisited(next) {
			continue
		}
		existing := &r.states[next]
		if existing.seen && newCost >= existing.trueCost {
			continue
		}
		exitTick := arrival + r.engine.TickFromSeconds(adjusted)
		*existing = searchState{trueCost: newCost, arrivalTick: exitTick, pred: edge, hasPred: true, seen: true}

		if err := r.tracker.chargeLabel(); err != nil {
			return err
		}
		f := newCost + estimate(next)
		if err := r.q.Insert(next, exitTick, f, edge); err != nil {
			return wrapPoolExhausted(err, r.q.Capacity())
		}
		if err := r.tracker.checkFrontier(r.q.Len()); err != nil {
			return err
		}
	}
	return nil
}

// reconstructPath walks predecessors from edge back to a seed edge.
func (r *run) reconstructPath(edge uint32) (path []uint32, ticks []timetick.Tick) {
	for {
		path = append(path, edge)
		ticks = append(ticks, r.states[edge].arrivalTick)
		st := r.states[edge]
		if !st.hasPred {
			break
		}
		edge = st.pred
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
		ticks[i], ticks[j] = ticks[j], ticks[i]
	}
	return path, ticks
}

func noEstimate(uint32) float64 { return 0 }
