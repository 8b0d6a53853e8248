package cost

import (
	"fmt"
	"math"

	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/overlay"
	"github.com/taro-engine/taro/timetick"
)

// CalendarMode selects how Traverse derives day-of-week and bucket index
// from an entry tick; package trait exposes this as its calendar strategy
// pair (spec §2, §9). The default, CalendarUTC, matches spec §4.7 verbatim.
type CalendarMode uint8

const (
	// CalendarUTC converts ticks to wall-clock time in the model's declared
	// profile_timezone (spec §4.7 steps 2-3).
	CalendarUTC CalendarMode = iota
	// CalendarLinear treats the tick stream as a synthetic clock with no
	// timezone: day-of-week and bucket are derived by dividing the tick's
	// raw elapsed seconds, with tick 0 falling on a Monday. Used for models
	// whose ticks are not true Unix epochs (e.g. simulation or test fixtures
	// seeded at an arbitrary origin).
	CalendarLinear
)

// Option configures an Engine at construction time, following the
// functional-options idiom this module uses throughout (e.g.
// planner.NewEuclideanHeuristic's panic-on-invalid-configuration sibling).
type Option func(*Engine)

// WithCalendar selects the calendar strategy Traverse uses to derive
// day-of-week and bucket index. The zero value (no option) is CalendarUTC.
func WithCalendar(mode CalendarMode) Option {
	return func(e *Engine) { e.calendar = mode }
}

// WithEdgeBasedTransitions selects the default transition model: turn-cost
// penalties are looked up and applied between consecutive edges (spec §4.7
// "Turn costs"). Only needed to override a prior WithNodeBasedTransitions.
func WithEdgeBasedTransitions() Option {
	return func(e *Engine) { e.edgeBasedTransitions = true }
}

// WithNodeBasedTransitions disables turn-cost lookups entirely: every
// transition is treated as penalty-free; package trait exposes this as its
// transition strategy pair (spec §2, §9). Use for models whose turn-cost
// table is absent or not meaningful for the query.
func WithNodeBasedTransitions() Option {
	return func(e *Engine) { e.edgeBasedTransitions = false }
}

// Engine composes an edge's traversal cost at a given entry tick (spec
// §4.7). It is safe for concurrent use: the underlying Store is immutable
// and the Overlay is internally synchronized.
type Engine struct {
	store                *model.Store
	live                 *overlay.Overlay // nil means no live overrides are active
	bucketSizeSec        int64
	calendar             CalendarMode
	edgeBasedTransitions bool
}

// NewEngine constructs a cost Engine over store, with an optional live
// overlay (nil disables live overrides entirely, treating every edge as
// MISSING). bucketSizeSec must be positive (spec §4.1 "Bucket size must be
// positive"). opts may override the default calendar (UTC) and transition
// (edge-based) strategies.
func NewEngine(store *model.Store, live *overlay.Overlay, bucketSizeSec int64, opts ...Option) (*Engine, error) {
	if bucketSizeSec <= 0 {
		return nil, ErrBadBucketSize
	}
	e := &Engine{store: store, live: live, bucketSizeSec: bucketSizeSec, edgeBasedTransitions: true}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Traverse computes (traversal_seconds, exit_tick) for edgeID entered at
// entryTick, per spec §4.7 steps 1-6. A blocked live override or a NaN/
// negative composed traversal returns an error wrapping ErrEdgeBlocked or
// ErrNonFiniteTraversal respectively.
func (e *Engine) Traverse(edgeID uint32, entryTick timetick.Tick) (traversalSeconds float64, exitTick timetick.Tick, err error) {
	meta := e.store.Metadata()

	base := float64(e.store.BaseWeight(edgeID))

	var dow, bucket int
	if e.calendar == CalendarLinear {
		dow, bucket = linearDowAndBucket(entryTick, meta.TickDurationNS, e.bucketSizeSec)
	} else {
		dow, err = timetick.DayOfWeek(entryTick, meta.TimeUnit, e.store.Location())
		if err != nil {
			return 0, 0, fmt.Errorf("cost: day_of_week: %w", err)
		}
		bucket, err = timetick.ToBucket(entryTick, meta.TimeUnit, e.store.Location(), e.bucketSizeSec)
		if err != nil {
			return 0, 0, fmt.Errorf("cost: to_bucket: %w", err)
		}
	}

	profileID := e.store.EdgeProfileID(edgeID)
	pMult := e.store.Profiles().GetMultiplierForDay(profileID, dow, bucket)

	liveMult := 1.0
	if e.live != nil {
		mult, status := e.live.Lookup(edgeID, entryTick)
		if status == overlay.Blocked {
			return 0, 0, fmt.Errorf("%w: edge %d live-blocked", ErrEdgeBlocked, edgeID)
		}
		liveMult = mult
	}

	traversal := base * pMult * liveMult
	if math.IsNaN(traversal) || math.IsInf(traversal, 0) || traversal < 0 {
		return 0, 0, fmt.Errorf("%w: edge=%d base=%v p_mult=%v live_mult=%v", ErrNonFiniteTraversal, edgeID, base, pMult, liveMult)
	}

	tickDurationSec := float64(meta.TickDurationNS) / 1e9
	ticks := int64(math.Ceil(traversal / tickDurationSec))
	return traversal, entryTick + timetick.Tick(ticks), nil
}

// ApplyTurnPenalty folds a turn-cost penalty into traversalSeconds for the
// from_edge -> to_edge transition. A negative stored penalty marks the
// transition forbidden, returned as ErrEdgeBlocked (spec §4.7 "Turn costs
// add penalty_seconds ... negative penalty marks the transition as
// forbidden"). No turn-cost entry is a no-op.
func (e *Engine) ApplyTurnPenalty(fromEdge, toEdge uint32, traversalSeconds float64) (float64, error) {
	if !e.edgeBasedTransitions {
		return traversalSeconds, nil
	}
	penalty, found := e.store.TurnPenalty(fromEdge, toEdge)
	if !found {
		return traversalSeconds, nil
	}
	if penalty < 0 {
		return 0, fmt.Errorf("%w: forbidden transition %d -> %d", ErrEdgeBlocked, fromEdge, toEdge)
	}
	return traversalSeconds + float64(penalty), nil
}

// linearDowAndBucket derives a day-of-week and bucket index directly from
// entryTick's elapsed seconds, with no timezone conversion: tick 0 falls at
// the start of a synthetic Monday (CalendarLinear, spec §2/§9 "temporal
// calendar (UTC/linear)").
func linearDowAndBucket(entryTick timetick.Tick, tickDurationNS int64, bucketSizeSec int64) (dow, bucket int) {
	tickDurationSec := float64(tickDurationNS) / 1e9
	totalSeconds := int64(float64(entryTick) * tickDurationSec)
	days := timetick.FloorDiv(totalSeconds, 86400)
	dow = int(timetick.FloorMod(days, 7))
	secInDay := timetick.FloorMod(totalSeconds, 86400)
	bucket = int(secInDay / bucketSizeSec)
	return dow, bucket
}

// TickFromSeconds converts a traversal duration already composed by Traverse
// or ApplyTurnPenalty into a whole number of engine ticks, rounding up
// (spec §4.7 step 6, "exit_tick = entry_tick + ceil(traversal in
// engine-tick units)"). Planners use this to recompute an edge's exit tick
// after folding in a turn penalty, which Traverse alone does not account
// for.
func (e *Engine) TickFromSeconds(seconds float64) timetick.Tick {
	tickDurationSec := float64(e.store.Metadata().TickDurationNS) / 1e9
	return timetick.Tick(int64(math.Ceil(seconds / tickDurationSec)))
}
