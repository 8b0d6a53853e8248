package planner

import (
	"math"

	"github.com/taro-engine/taro/cost"
	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/timetick"
)

// Matrix computes a one-to-many time-dependent sweep from source to every
// node in targets (spec §4.9 "Matrix"). A target is resolved when the first
// edge into it is settled. The sweep stops as soon as every target is
// resolved, or when the frontier is exhausted, in which case the targets
// still unresolved are reported Unreachable. It has no upper-bound cut-off:
// it does not stop early on the running maximum of resolved target costs.
func Matrix(store *model.Store, engine *cost.Engine, heur Heuristic, source uint32, targets []uint32, departureTick timetick.Tick, budget Budget) (map[uint32]TargetResult, error) {
	if source >= store.NodeCount() {
		return nil, ErrBadSource
	}
	for _, t := range targets {
		if t >= store.NodeCount() {
			return nil, ErrBadTarget
		}
	}
	if err := heur.Validate(store); err != nil {
		return nil, err
	}

	results := make(map[uint32]TargetResult, len(targets))
	unresolved := make(map[uint32]struct{}, len(targets))
	for _, t := range targets {
		if t == source {
			results[t] = TargetResult{Cost: 0, ArrivalTick: departureTick}
			continue
		}
		unresolved[t] = struct{}{}
	}

	if len(unresolved) == 0 {
		return results, nil
	}

	r := newRun(store, engine, heur, budget)
	estimate := func(edge uint32) float64 {
		best := math.Inf(1)
		for t := range unresolved {
			if h := heur.EstimateToTarget(store, edge, t); h < best {
				best = h
			}
		}
		if math.IsInf(best, 1) {
			return 0
		}
		return best
	}

	if err := r.seed(source, departureTick, estimate); err != nil {
		return nil, err
	}

	for len(unresolved) > 0 {
		if r.q.Len() == 0 {
			break
		}
		st, err := r.q.ExtractMin()
		if err != nil {
			return nil, err
		}
		if err := r.tracker.chargeWork(); err != nil {
			r.q.Recycle(st)
			return nil, err
		}
		if r.visited.IsVisited(st.Edge) {
			r.q.Recycle(st)
			continue
		}
		r.visited.MarkVisited(st.Edge)
		if err := r.tracker.chargeSettled(); err != nil {
			r.q.Recycle(st)
			return nil, err
		}

		node := store.EdgeTarget(st.Edge)
		if _, isUnresolved := unresolved[node]; isUnresolved {
			trueCost := r.states[st.Edge].trueCost
			results[node] = TargetResult{Cost: trueCost, ArrivalTick: r.states[st.Edge].arrivalTick}
			delete(unresolved, node)
		}

		if len(unresolved) == 0 {
			r.q.Recycle(st)
			break
		}

		if err := r.relax(st.Edge, estimate); err != nil {
			r.q.Recycle(st)
			return nil, err
		}
		r.q.Recycle(st)
	}

	for t := range unresolved {
		results[t] = TargetResult{Unreachable: true}
	}
	return results, nil
}
