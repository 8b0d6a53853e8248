package planner

import (
	"strconv"

	"github.com/taro-engine/taro/cost"
	"github.com/taro-engine/taro/errs"
	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/timetick"
)

// Route computes a single-source, single-target time-dependent shortest
// path (spec §4.9 "Dijkstra"/"A*"). heur selects the search's admissibility
// source; pass NoneHeuristic{} for plain Dijkstra. Returns an
// *errs.UnreachableError if target is never reached, or a
// *errs.BudgetExceededError if any configured limit is hit first.
func Route(store *model.Store, engine *cost.Engine, heur Heuristic, source, target uint32, departureTick timetick.Tick, budget Budget) (RouteResult, error) {
	if source >= store.NodeCount() {
		return RouteResult{}, ErrBadSource
	}
	if target >= store.NodeCount() {
		return RouteResult{}, ErrBadTarget
	}
	if err := heur.Validate(store); err != nil {
		return RouteResult{}, err
	}
	if source == target {
		return RouteResult{TotalCost: 0, EdgePath: nil, ArrivalTicks: nil}, nil
	}

	r := newRun(store, engine, heur, budget)
	estimate := func(e uint32) float64 { return heur.EstimateToTarget(store, e, target) }

	if err := r.seed(source, departureTick, estimate); err != nil {
		return RouteResult{}, err
	}

	for {
		if r.q.Len() == 0 {
			return RouteResult{Unreachable: true, ReasonCode: "UNREACHABLE"}, errs.NewUnreachableError(nodeLabel(source), nodeLabel(target))
		}
		st, err := r.q.ExtractMin()
		if err != nil {
			return RouteResult{}, err
		}
		if err := r.tracker.chargeWork(); err != nil {
			r.q.Recycle(st)
			return RouteResult{}, err
		}
		if r.visited.IsVisited(st.Edge) {
			r.q.Recycle(st)
			continue
		}
		r.visited.MarkVisited(st.Edge)
		if err := r.tracker.chargeSettled(); err != nil {
			r.q.Recycle(st)
			return RouteResult{}, err
		}

		if store.EdgeTarget(st.Edge) == target {
			path, ticks := r.reconstructPath(st.Edge)
			total := r.states[st.Edge].trueCost
			r.q.Recycle(st)
			return RouteResult{TotalCost: total, EdgePath: path, ArrivalTicks: ticks}, nil
		}

		if err := r.relax(st.Edge, estimate); err != nil {
			r.q.Recycle(st)
			return RouteResult{}, err
		}
		r.q.Recycle(st)
	}
}

func nodeLabel(node uint32) string {
	return strconv.FormatUint(uint64(node), 10)
}
