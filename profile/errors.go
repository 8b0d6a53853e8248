package profile

import "errors"

// Sentinel errors for Profile Store construction and lookup.
var (
	// ErrDuplicateProfileID indicates two profiles in the source table share
	// a profile_id (spec §4.3: "unique profile_id").
	ErrDuplicateProfileID = errors.New("profile: duplicate profile id")

	// ErrBadDayMask indicates day_mask is 0 or has a bit set at position >= 7
	// (spec §3: "day_mask occupies bits 0..6 ... 0 and any bit >= 7 are rejected").
	ErrBadDayMask = errors.New("profile: day_mask out of range")

	// ErrEmptyBuckets indicates a profile's buckets vector is empty
	// (spec §3: "buckets is a non-empty vector").
	ErrEmptyBuckets = errors.New("profile: buckets must be non-empty")

	// ErrNonFiniteBucket indicates a bucket value, or the global multiplier,
	// is NaN, +Inf, -Inf, or negative (spec §3: "all finite and non-negative").
	ErrNonFiniteBucket = errors.New("profile: bucket or multiplier not finite and non-negative")

	// ErrReservedProfileID indicates a profile in the source table uses the
	// model package's NoProfile sentinel as its own profile_id, which would
	// make the sentinel ambiguous (spec §9 Open Question).
	ErrReservedProfileID = errors.New("profile: profile_id collides with the no-profile sentinel")

	// ErrNaNFractionalBucket indicates Interpolate was called with a NaN or
	// infinite fractional bucket (spec §4.5: "Rejects NaN/infinite fractional bucket").
	ErrNaNFractionalBucket = errors.New("profile: fractional bucket is not finite")

	// ErrFIFOViolation indicates a profile's effective multiplier drops by
	// more than 1 seconds-per-second across a bucket boundary (spec §4.7
	// step 7: "across bucket boundaries buckets[b+1] >= buckets[b] - 1"),
	// a gross violation of the FIFO arrival-time invariant that must surface
	// at model validation rather than at query time.
	ErrFIFOViolation = errors.New("profile: bucket boundary violates FIFO (buckets[b+1] < buckets[b] - 1)")
)
