package facade

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/taro-engine/taro/config"
	"github.com/taro-engine/taro/cost"
	"github.com/taro-engine/taro/errs"
	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/overlay"
	"github.com/taro-engine/taro/planner"
	"github.com/taro-engine/taro/trait"
)

// Option configures a Facade at construction time.
type Option func(*Facade)

// WithLogger overrides the facade's request-outcome logger. The default is
// a disabled logger, matching the hot path's "no logging" default (spec §5)
// carried one layer up: a Facade only logs if the embedder opts in.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Facade) { f.log = log }
}

// Facade is the Route Facade (spec §4.10): the single entry point that
// resolves addresses, wires budgets, and dispatches to package planner. It
// is safe for concurrent use: the Store is immutable, the Overlay is
// internally synchronized, and the coordinate-resolution cache is
// segmented and thread-safe. Each call builds its own planner run, so
// concurrent Route/Matrix calls never share mutable search state (spec §5
// "the planner and its queue/visited set are not thread-safe; each thread
// owns its own instance").
type Facade struct {
	store *model.Store
	live  *overlay.Overlay
	cfg   *config.Config
	cache *coordCache
	log   zerolog.Logger
}

// New constructs a Facade over store. live may be nil (no live overrides).
// cfg may be nil, in which case config.Load's environment defaults apply
// (spec §4.10 step 3, §9 "Budget defaults read from process configuration
// once on facade construction").
func New(store *model.Store, live *overlay.Overlay, cfg *config.Config, opts ...Option) (*Facade, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if cfg == nil {
		cfg = config.Load()
	}
	f := &Facade{
		store: store,
		live:  live,
		cfg:   cfg,
		cache: newCoordCache(cfg.CoordCacheSize, cfg.CoordCacheShards),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// resolve maps addr to an internal node id via the addressing trait
// selected by addr.Kind, memoizing coordinate resolutions (spec §4.10
// steps 1-2).
func (f *Facade) resolve(addr trait.Address, maxSnapDistance float64) (uint32, error) {
	if maxSnapDistance <= 0 {
		maxSnapDistance = f.cfg.DefaultMaxSnapDistance
	}
	resolver, err := trait.ResolverFor(addr, maxSnapDistance)
	if err != nil {
		return 0, err
	}
	if err := resolver.Validate(f.store); err != nil {
		return 0, err
	}
	if addr.Kind == trait.ByCoordinate {
		return f.cache.resolve(f.store, resolver, addr)
	}
	return resolver.Resolve(f.store, addr)
}

// buildEngine wires a cost.Engine for one request, applying the request's
// calendar and transition trait overrides (spec §4.10 step 3's budget
// wiring extends here to the cost-engine strategy wiring spec §9
// describes).
func (f *Facade) buildEngine(calendar trait.Calendar, transition trait.Transition) (*cost.Engine, error) {
	calendar = defaultCalendar(calendar)
	transition = defaultTransition(transition)
	if err := calendar.Validate(f.store); err != nil {
		return nil, err
	}
	if err := transition.Validate(f.store); err != nil {
		return nil, err
	}
	return cost.NewEngine(f.store, f.live, f.cfg.BucketSizeSec, calendar.Option(), transition.Option())
}

func (f *Facade) budgetFor(override *planner.Budget) planner.Budget {
	if override != nil {
		return *override
	}
	return f.cfg.Budget
}

// Route resolves req's source/target addresses and computes a
// single-source, single-target time-dependent shortest path (spec §4.10
// step 4-5, route form).
func (f *Facade) Route(req RouteRequest) (planner.RouteResult, error) {
	sourceNode, err := f.resolve(req.Source, req.MaxSnapDistance)
	if err != nil {
		return planner.RouteResult{}, err
	}
	targetNode, err := f.resolve(req.Target, req.MaxSnapDistance)
	if err != nil {
		return planner.RouteResult{}, err
	}
	engine, err := f.buildEngine(req.Calendar, req.Transition)
	if err != nil {
		return planner.RouteResult{}, err
	}
	heur := defaultHeuristic(req.Heuristic)
	budget := f.budgetFor(req.Budget)

	result, err := planner.Route(f.store, engine, heur, sourceNode, targetNode, req.Departure, budget)
	f.logRouteOutcome(sourceNode, targetNode, result, err)
	return result, err
}

// Matrix resolves req's source and every target address and computes a
// one-to-many time-dependent sweep (spec §4.9 "Matrix", §4.10 step 4-5,
// matrix form). The returned map is keyed by resolved internal target node
// id, matching planner.Matrix's own keying.
func (f *Facade) Matrix(req MatrixRequest) (map[uint32]planner.TargetResult, error) {
	sourceNode, err := f.resolve(req.Source, req.MaxSnapDistance)
	if err != nil {
		return nil, err
	}
	targetNodes := make([]uint32, len(req.Targets))
	for i, addr := range req.Targets {
		node, rerr := f.resolve(addr, req.MaxSnapDistance)
		if rerr != nil {
			return nil, rerr
		}
		targetNodes[i] = node
	}
	engine, err := f.buildEngine(req.Calendar, req.Transition)
	if err != nil {
		return nil, err
	}
	heur := defaultHeuristic(req.Heuristic)
	budget := f.budgetFor(req.Budget)

	result, err := planner.Matrix(f.store, engine, heur, sourceNode, targetNodes, req.Departure, budget)
	f.logMatrixOutcome(sourceNode, targetNodes, result, err)
	return result, err
}

func (f *Facade) logRouteOutcome(source, target uint32, result planner.RouteResult, err error) {
	if err != nil {
		var unreachable *errs.UnreachableError
		var budgetErr *errs.BudgetExceededError
		switch {
		case errors.As(err, &unreachable):
			f.log.Info().Uint32("source", source).Uint32("target", target).Msg("route unreachable")
		case errors.As(err, &budgetErr):
			f.log.Warn().Uint32("source", source).Uint32("target", target).Str("reason", budgetErr.ReasonCode()).Msg("route budget exceeded")
		default:
			f.log.Error().Err(err).Uint32("source", source).Uint32("target", target).Msg("route failed")
		}
		return
	}
	f.log.Debug().Uint32("source", source).Uint32("target", target).Float64("cost", result.TotalCost).Msg("route resolved")
}

func (f *Facade) logMatrixOutcome(source uint32, targets []uint32, result map[uint32]planner.TargetResult, err error) {
	if err != nil {
		f.log.Error().Err(err).Uint32("source", source).Int("targets", len(targets)).Msg("matrix failed")
		return
	}
	unreachable := 0
	for _, r := range result {
		if r.Unreachable {
			unreachable++
		}
	}
	f.log.Debug().Uint32("source", source).Int("targets", len(targets)).Int("unreachable", unreachable).Msg("matrix resolved")
}
