package facade

import (
	"github.com/taro-engine/taro/planner"
	"github.com/taro-engine/taro/timetick"
	"github.com/taro-engine/taro/trait"
)

// RouteRequest is a single point-to-point query (spec §4.10 "Accepts a
// request (source_address, target_address[s], departure_tick, algorithm,
// heuristic, trait overrides, snap distance)"). Nil trait fields fall back
// to the facade's defaults (UTC calendar, edge-based transitions, NONE
// heuristic); a zero MaxSnapDistance falls back to the facade's configured
// default.
type RouteRequest struct {
	Source          trait.Address
	Target          trait.Address
	Departure       timetick.Tick
	Heuristic       planner.Heuristic
	Calendar        trait.Calendar
	Transition      trait.Transition
	MaxSnapDistance float64
	Budget          *planner.Budget
}

// MatrixRequest is a one-to-many query (spec §4.9 "Matrix"). Targets are
// resolved independently; a target address that fails to resolve makes the
// whole request fail (unlike an individual unreachable target, which is
// reported per-entry in the result map).
type MatrixRequest struct {
	Source          trait.Address
	Targets         []trait.Address
	Departure       timetick.Tick
	Heuristic       planner.Heuristic
	Calendar        trait.Calendar
	Transition      trait.Transition
	MaxSnapDistance float64
	Budget          *planner.Budget
}

func defaultCalendar(c trait.Calendar) trait.Calendar {
	if c == nil {
		return trait.UTCCalendar{}
	}
	return c
}

func defaultTransition(tr trait.Transition) trait.Transition {
	if tr == nil {
		return trait.EdgeBasedTransition{}
	}
	return tr
}

func defaultHeuristic(h planner.Heuristic) planner.Heuristic {
	if h == nil {
		return planner.NoneHeuristic{}
	}
	return h
}
