package trait

import "errors"

var (
	// ErrUnknownAddressKind marks an Address whose Kind is neither
	// ByExternalID nor ByCoordinate.
	ErrUnknownAddressKind = errors.New("trait: unknown address kind")

	// ErrSnapDistanceExceeded marks a coordinate address whose nearest node
	// lies farther than the request's max snap distance (spec §4.10 step 1).
	ErrSnapDistanceExceeded = errors.New("trait: nearest node exceeds max snap distance")

	// ErrNonFiniteCoordinate marks a coordinate address with a NaN or
	// infinite component.
	ErrNonFiniteCoordinate = errors.New("trait: coordinate is non-finite")
)
