// Package overlay implements the Live Overlay (spec §4.6): a concurrent
// map from edge id to a transient (speed_factor, valid_until_ticks) pair
// supplied out-of-band (traffic feeds, incident reports) after a model has
// already loaded. Reads are lock-free; writes are serialized by a single
// mutex and apply one of three capacity policies when the table is full.
package overlay
