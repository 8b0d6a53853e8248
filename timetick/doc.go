// Package timetick implements TARO's Time Contract (spec §4.1): the single
// integer time unit ("engine tick") all cost-engine and planner arithmetic is
// performed in, plus the conversions and calendar arithmetic built on it.
//
// An engine tick is a signed 64-bit integer counting absolute time in the
// unit declared by the loaded model's metadata — SECONDS or MILLISECONDS.
// No mixed-unit arithmetic is ever performed: every external timestamp is
// normalized to engine ticks once, on ingest, via NormalizeToEngineTicks.
//
// Complexity: every operation in this package is O(1), except ValidateFIFO,
// which is linear in the length of its input.
package timetick
