package planner

import "errors"

var (
	// ErrBadSource marks a source node at or beyond the model's node count.
	ErrBadSource = errors.New("planner: source node out of range")

	// ErrBadTarget marks a target node at or beyond the model's node count.
	ErrBadTarget = errors.New("planner: target node out of range")

	// ErrNonAdmissibleHeuristic marks a heuristic rejected at configuration
	// time because it is not a valid admissible lower bound for the loaded
	// model (spec §4.9 "Admissibility must hold; non-admissible heuristics
	// are rejected at configuration time").
	ErrNonAdmissibleHeuristic = errors.New("planner: heuristic is not admissible for this model")
)
