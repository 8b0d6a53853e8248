// Package queue implements the Search Queue + Visited Set (spec §4.8): an
// indexed binary min-heap keyed by (cost, arrival_tick, edge_id), backed by
// a bounded pool of state objects, plus a fixed-size bitset visited set.
package queue
