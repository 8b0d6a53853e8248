package overlay

import "errors"

var (
	// ErrBadCapacity marks a non-positive overlay capacity at construction.
	ErrBadCapacity = errors.New("overlay: capacity must be positive")

	// ErrNonFiniteSpeedFactor marks an update whose speed_factor is NaN,
	// infinite, or negative (spec §4.6 only defines 0.0 as a sentinel; any
	// other non-finite value is a caller contract violation).
	ErrNonFiniteSpeedFactor = errors.New("overlay: speed_factor must be finite and non-negative")
)
