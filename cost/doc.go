// Package cost implements the Cost Engine (spec §4.7): given an edge id and
// an entry tick, it composes the edge's base weight, its temporal-profile
// multiplier, and any live-overlay override into a traversal duration and
// exit tick, and folds in turn-cost penalties between consecutive edges.
package cost
