package planner

import "github.com/taro-engine/taro/timetick"

// RouteResult is the outcome of a point-to-point Route search (spec §6
// "Result payload", route form).
type RouteResult struct {
	TotalCost    float64
	EdgePath     []uint32
	ArrivalTicks []timetick.Tick
	Unreachable  bool
	ReasonCode   string
}

// TargetResult is one target's outcome within a Matrix sweep (spec §6
// "Matrix: one such record per target").
type TargetResult struct {
	Cost        float64
	ArrivalTick timetick.Tick
	Unreachable bool
}

// searchState is the per-edge bookkeeping a run keeps outside the pooled
// queue, since queue.State.Cost carries the A* priority key (g + h), not
// the true accumulated cost needed for path reconstruction and budgeting.
type searchState struct {
	trueCost    float64
	arrivalTick timetick.Tick
	pred        uint32
	hasPred     bool
	seen        bool
}
