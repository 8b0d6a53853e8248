// Package facade implements the Route Facade (spec §4.10): the single
// entry point a caller (the out-of-scope HTTP layer, or a direct Go
// embedder) uses to turn a request naming source/target addresses, a
// departure tick, and trait overrides into a resolved route or matrix.
//
// Resolution order mirrors spec §4.10 exactly: addresses are resolved via
// the selected trait.Resolver (ID Mapper or Spatial Runtime), coordinate
// resolutions are memoized in a segmented LRU (spec §4.10 step 2, §5),
// budgets are wired from config.Config with per-request overrides, the
// request is dispatched to package planner, and the result is assembled
// into a RouteResult or Matrix map. Facade-level outcomes (reached,
// unreachable, budget-exceeded) are logged via zerolog; the algorithm core
// itself stays silent on the hot path (spec §5 "suspension points: none").
package facade
