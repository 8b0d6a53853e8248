// Package planner implements the time-dependent edge-based search
// algorithms of spec §4.9: Dijkstra (heuristic NONE), A* with a pluggable
// admissible heuristic (Euclidean or ALT-landmark), and a one-to-many
// Matrix sweep with early termination. All three share the same queue
// (package queue) and cost composition (package cost), and honor a shared
// work/label/frontier Budget with the deterministic reason codes of
// package errs.
package planner
