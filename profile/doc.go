// Package profile implements TARO's Profile Store (spec §4.5): lookup and
// cyclic interpolation of time-bucketed multipliers, selected by a
// day-of-week mask.
//
// A Store is built once from the model's validated profile table and is
// then immutable and safe for concurrent reads, exactly like the rest of
// the serving runtime's read side (spec §5).
package profile
