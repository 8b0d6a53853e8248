// Package taro is the root of the Time-Aware Routing engine: a serving-side
// library for time-dependent shortest-path queries over a precomputed road
// or transit network.
//
// 🚀 What is TARO?
//
//	A read-only routing runtime that answers "what does this edge cost if I
//	cross it at this tick" instead of assuming a single static weight:
//
//	  • Model Store: a CSR topology decoded once from a binary buffer
//	  • Temporal profiles: per-edge day/bucket speed multipliers
//	  • Live overlay: short-lived speed overrides layered on top, concurrently
//	  • Time-dependent Dijkstra/A*: edge-based search with turn costs and budgets
//
// ✨ Design goals
//
//   - Read-only at query time — no incremental graph mutation API
//   - Concurrent-safe — the Store is immutable, the Overlay is lock-free on
//     the read path, and each search owns its own queue and visited set
//   - Pluggable — addressing, calendar, and turn-cost strategies are traits,
//     not hardcoded branches
//   - Budgeted — every search is bounded by work/label/frontier/settled limits
//
// Everything is organized under one subpackage per concern:
//
//	model/    — CSR Model Store: decoding, contract validation, query API
//	timetick/ — tick/time-unit normalization and bucket arithmetic
//	idmap/    — external-id <-> internal-node mapping
//	spatial/  — KD-tree nearest-node lookup
//	profile/  — per-edge temporal multiplier tables
//	overlay/  — concurrent live speed-override table
//	cost/     — per-edge traversal cost and turn-penalty engine
//	queue/    — search priority queue and visited set
//	planner/  — Dijkstra/A* route and matrix search
//	trait/    — pluggable addressing, calendar, and transition strategies
//	config/   — environment-sourced process configuration
//	facade/   — the single entry point: Route and Matrix
//	errs/     — typed, reason-coded error hierarchy
//
// Quick shape:
//
//	source ──(edge, departure tick)──> cost.Engine.Traverse ──> traversal seconds
//	                                         │
//	                                    overlay.Lookup (live override)
//	                                    profile.GetMultiplierForDay (scheduled)
//
// See SPEC_FULL.md for the full module map and invariants.
package taro
