package profile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/profile"
)

const sentinel = 0xFFFFFFFF

func TestNewStoreValidation(t *testing.T) {
	_, err := profile.NewStore([]profile.RawProfile{{ProfileID: 1, DayMask: 0, Buckets: []float32{1}, Multiplier: 1}}, sentinel)
	require.ErrorIs(t, err, profile.ErrBadDayMask)

	_, err = profile.NewStore([]profile.RawProfile{{ProfileID: 1, DayMask: 0x7F, Buckets: nil, Multiplier: 1}}, sentinel)
	require.ErrorIs(t, err, profile.ErrEmptyBuckets)

	_, err = profile.NewStore([]profile.RawProfile{{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{float32(math.NaN())}, Multiplier: 1}}, sentinel)
	require.ErrorIs(t, err, profile.ErrNonFiniteBucket)

	_, err = profile.NewStore([]profile.RawProfile{
		{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{1}, Multiplier: 1},
		{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{1}, Multiplier: 1},
	}, sentinel)
	require.ErrorIs(t, err, profile.ErrDuplicateProfileID)

	_, err = profile.NewStore([]profile.RawProfile{{ProfileID: sentinel, DayMask: 0x7F, Buckets: []float32{1}, Multiplier: 1}}, sentinel)
	require.ErrorIs(t, err, profile.ErrReservedProfileID)
}

func TestNewStoreRejectsFIFOBoundaryViolation(t *testing.T) {
	// 1 < 5 - 1 at the bucket 0 -> 1 boundary: a gross drop that would make
	// the composed arrival-time function non-monotone (spec §4.7 step 7).
	_, err := profile.NewStore([]profile.RawProfile{
		{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{5, 1}, Multiplier: 1.0},
	}, sentinel)
	require.ErrorIs(t, err, profile.ErrFIFOViolation)
}

func TestNewStoreAcceptsExactFIFOBoundary(t *testing.T) {
	// 4 == 5 - 1: the boundary case is allowed, not rejected.
	_, err := profile.NewStore([]profile.RawProfile{
		{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{5, 4}, Multiplier: 1.0},
	}, sentinel)
	require.NoError(t, err)
}

func TestNewStoreAllowsSharpDropAcrossDayWrap(t *testing.T) {
	// The last-bucket-to-first-bucket wrap (midnight) is not checked: a
	// profile may legitimately reset sharply there (spec §8 scenario 4's
	// own [1,2,3,4] fixture relies on this: bucket 3's value of 4 drops to
	// bucket 0's value of 1 across the day boundary).
	_, err := profile.NewStore([]profile.RawProfile{
		{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{1, 2, 3, 4}, Multiplier: 1.0},
	}, sentinel)
	require.NoError(t, err)
}

func TestProfilePeakScenario(t *testing.T) {
	// spec §8 scenario 4: {multiplier 1.0, buckets [1,2,3,4], day_mask ALL}.
	s, err := profile.NewStore([]profile.RawProfile{
		{ProfileID: 7, DayMask: 0x7F, Buckets: []float32{1, 2, 3, 4}, Multiplier: 1.0},
	}, sentinel)
	require.NoError(t, err)

	assert.True(t, s.IsActiveOnDay(7, 2)) // Wednesday
	assert.Equal(t, 3.0, s.GetMultiplierForDay(7, 2, 2))
}

func TestMissingProfileIsNeutral(t *testing.T) {
	s, err := profile.NewStore(nil, sentinel)
	require.NoError(t, err)
	assert.Equal(t, profile.NeutralMultiplier, s.GetMultiplier(99, 0))
	assert.False(t, s.IsActiveOnDay(99, 0))
	v, err := s.Interpolate(99, 1.5)
	require.NoError(t, err)
	assert.Equal(t, profile.NeutralMultiplier, v)
}

func TestInterpolateIdempotenceAndWrap(t *testing.T) {
	// spec §8 property 8.
	s, err := profile.NewStore([]profile.RawProfile{
		{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{1, 2, 3, 4}, Multiplier: 2.0},
	}, sentinel)
	require.NoError(t, err)

	for b := 0; b < 4; b++ {
		exact := s.GetMultiplier(1, b)
		interp, err := s.Interpolate(1, float64(b))
		require.NoError(t, err)
		assert.InDelta(t, exact, interp, 1e-9)

		wrapped, err := s.Interpolate(1, float64(b+4))
		require.NoError(t, err)
		assert.InDelta(t, interp, wrapped, 1e-9)
	}

	// midpoint between bucket 0 (eff=2) and bucket 1 (eff=4) is 3.
	mid, err := s.Interpolate(1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, mid, 1e-9)

	// negative fractional bucket wraps backward from the end.
	negMid, err := s.Interpolate(1, -0.5)
	require.NoError(t, err)
	wrapMid, err := s.Interpolate(1, 3.5)
	require.NoError(t, err)
	assert.InDelta(t, wrapMid, negMid, 1e-9)
}

func TestInterpolateRejectsNonFinite(t *testing.T) {
	s, err := profile.NewStore([]profile.RawProfile{{ProfileID: 1, DayMask: 0x7F, Buckets: []float32{1, 2}, Multiplier: 1}}, sentinel)
	require.NoError(t, err)
	_, err = s.Interpolate(1, math.NaN())
	require.ErrorIs(t, err, profile.ErrNaNFractionalBucket)
	_, err = s.Interpolate(1, math.Inf(1))
	require.ErrorIs(t, err, profile.ErrNaNFractionalBucket)
}
