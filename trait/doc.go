// Package trait implements Trait Resolution (spec §2, §9): the pluggable
// addressing (coordinate/external-id), temporal calendar (UTC/linear), and
// transition (edge-/node-based) strategies a request may select. Each
// strategy is a tagged variant over the small capability set spec §9
// prescribes — {ID, Validate, compute} — rather than a virtual-inheritance
// hierarchy. The Heuristic strategy (NONE/ALT/Euclidean) lives in package
// planner since it is wired directly into the search loop; everything else
// lives here.
package trait
