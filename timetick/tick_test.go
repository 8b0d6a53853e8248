package timetick_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/timetick"
)

func TestValidateTickDuration(t *testing.T) {
	require.NoError(t, timetick.ValidateTickDuration(timetick.Seconds, 1_000_000_000))
	require.NoError(t, timetick.ValidateTickDuration(timetick.Milliseconds, 1_000_000))
	require.Error(t, timetick.ValidateTickDuration(timetick.Seconds, 1_000_000))
	require.Error(t, timetick.ValidateTickDuration(timetick.TimeUnit(9), 1))
}

func TestNormalizeToEngineTicks(t *testing.T) {
	// identity
	got, err := timetick.NormalizeToEngineTicks(42, timetick.Seconds, timetick.Seconds)
	require.NoError(t, err)
	assert.EqualValues(t, 42, got)

	// coarser -> finer: exact multiply
	got, err = timetick.NormalizeToEngineTicks(3, timetick.Seconds, timetick.Milliseconds)
	require.NoError(t, err)
	assert.EqualValues(t, 3000, got)

	// finer -> coarser: exact divide
	got, err = timetick.NormalizeToEngineTicks(5000, timetick.Milliseconds, timetick.Seconds)
	require.NoError(t, err)
	assert.EqualValues(t, 5, got)

	// finer -> coarser: lossy, must fail rather than truncate
	_, err = timetick.NormalizeToEngineTicks(5001, timetick.Milliseconds, timetick.Seconds)
	require.ErrorIs(t, err, timetick.ErrLossyConversion)
}

func TestFloorDivFloorMod(t *testing.T) {
	assert.EqualValues(t, -1, timetick.FloorDiv(-1, 7))
	assert.EqualValues(t, 6, timetick.FloorMod(-1, 7))
	assert.EqualValues(t, -2, timetick.FloorDiv(-7, 4))
	assert.EqualValues(t, 1, timetick.FloorMod(-7, 4))
	assert.EqualValues(t, 2, timetick.FloorDiv(9, 4))
	assert.EqualValues(t, 1, timetick.FloorMod(9, 4))
}

func TestDayOfWeekMondayIsZero(t *testing.T) {
	// 2024-01-01 is a Monday, 00:00:00 UTC.
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	dow, err := timetick.DayOfWeek(timetick.Tick(epoch), timetick.Seconds, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0, dow)

	// 2024-01-07 is a Sunday.
	epoch = time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC).Unix()
	dow, err = timetick.DayOfWeek(timetick.Tick(epoch), timetick.Seconds, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 6, dow)
}

func TestDayOfWeekNegativeEpochWraps(t *testing.T) {
	// 1969-12-28 (UTC) is a Sunday, preceding the Unix epoch.
	epoch := time.Date(1969, 12, 28, 1, 0, 0, 0, time.UTC).Unix()
	require.Less(t, epoch, int64(0))
	dow, err := timetick.DayOfWeek(timetick.Tick(epoch), timetick.Seconds, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 6, dow)
}

func TestToBucketAndBucketsPerDay(t *testing.T) {
	n, err := timetick.BucketsPerDay(3600)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	_, err = timetick.BucketsPerDay(0)
	require.ErrorIs(t, err, timetick.ErrBadBucketSize)

	// 2024-01-01 02:30:00 UTC -> bucket index 2 at 3600s buckets.
	epoch := time.Date(2024, 1, 1, 2, 30, 0, 0, time.UTC).Unix()
	b, err := timetick.ToBucket(timetick.Tick(epoch), timetick.Seconds, time.UTC, 3600)
	require.NoError(t, err)
	assert.Equal(t, 2, b)
}

func TestValidateFIFO(t *testing.T) {
	assert.True(t, timetick.ValidateFIFO([]timetick.Tick{0, 1, 1, 2, 5}))
	assert.False(t, timetick.ValidateFIFO([]timetick.Tick{0, 2, 1}))
	assert.True(t, timetick.ValidateFIFO(nil))
}
