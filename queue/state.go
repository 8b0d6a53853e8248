package queue

import "github.com/taro-engine/taro/timetick"

// State is one search-frontier entry: an edge reached at ArrivalTick with
// accumulated Cost via predecessor edge Pred. ExtractMin hands out a *State
// drawn from the queue's pool; the caller must call Queue.Recycle on it
// exactly once when done (spec §4.8 "the caller must recycle(state) to
// return the state object to the pool").
type State struct {
	Edge        uint32
	ArrivalTick timetick.Tick
	Cost        float64
	Pred        uint32

	poolIndex int32
	live      bool
}

// less implements the queue's total order: lower cost wins; ties break on
// earlier arrival_tick, then on smaller edge_id for determinism (spec §4.8).
func less(aCost float64, aTick timetick.Tick, aEdge uint32, bCost float64, bTick timetick.Tick, bEdge uint32) bool {
	if aCost != bCost {
		return aCost < bCost
	}
	if aTick != bTick {
		return aTick < bTick
	}
	return aEdge < bEdge
}
