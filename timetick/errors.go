package timetick

import "errors"

// Sentinel errors for the Time Contract. Wrap with %w at call sites; branch
// with errors.Is, never string comparison.
var (
	// ErrBadBucketSize indicates a non-positive bucket size was supplied to
	// ToBucket or BucketsPerDay.
	ErrBadBucketSize = errors.New("timetick: bucket size must be positive")

	// ErrBadTickDuration indicates a TimeUnit's declared tick_duration_ns does
	// not match the fixed contract (1e9 for SECONDS, 1e6 for MILLISECONDS).
	ErrBadTickDuration = errors.New("timetick: tick_duration_ns mismatch for declared time unit")

	// ErrUnknownTimeUnit indicates a TimeUnit value outside {SECONDS, MILLISECONDS}.
	ErrUnknownTimeUnit = errors.New("timetick: unrecognized time unit")

	// ErrLossyConversion indicates a finer-to-coarser unit conversion left a
	// non-zero remainder; NormalizeToEngineTicks never silently truncates.
	ErrLossyConversion = errors.New("timetick: unit conversion would truncate")
)
