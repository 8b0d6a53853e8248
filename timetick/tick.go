package timetick

import (
	"fmt"
	"time"
)

// Tick is a signed 64-bit engine tick: absolute time in the unit declared by
// the loaded model's metadata. All cost-engine and planner arithmetic is
// performed exclusively in this type; see package doc.
type Tick int64

// TimeUnit enumerates the two engine tick units a model may declare
// (spec §6 Metadata.time_unit). The numeric values match the wire encoding.
type TimeUnit uint8

const (
	// Seconds: one engine tick equals one second (tick_duration_ns == 1e9).
	Seconds TimeUnit = 0
	// Milliseconds: one engine tick equals one millisecond (tick_duration_ns == 1e6).
	Milliseconds TimeUnit = 1
)

// nsPerSecond and nsPerMillisecond are the fixed, non-configurable contract
// values a model's tick_duration_ns must match for its declared TimeUnit
// (spec §3 "Engine tick").
const (
	nsPerSecond      int64 = 1_000_000_000
	nsPerMillisecond int64 = 1_000_000
)

// TickDurationNS returns the nanoseconds-per-tick the contract requires for
// u, or ErrUnknownTimeUnit if u is not one of Seconds/Milliseconds.
func (u TimeUnit) TickDurationNS() (int64, error) {
	switch u {
	case Seconds:
		return nsPerSecond, nil
	case Milliseconds:
		return nsPerMillisecond, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownTimeUnit, u)
	}
}

// ValidateTickDuration checks that tickDurationNS matches the fixed contract
// value for u (spec §3: "tick_duration_ns must equal 1e9 for seconds or 1e6
// for milliseconds; any mismatch fails model loading").
func ValidateTickDuration(u TimeUnit, tickDurationNS int64) error {
	want, err := u.TickDurationNS()
	if err != nil {
		return err
	}
	if tickDurationNS != want {
		return fmt.Errorf("%w: unit=%d want=%d got=%d", ErrBadTickDuration, u, want, tickDurationNS)
	}
	return nil
}

// NormalizeToEngineTicks converts value, expressed in unit `from`, into a
// Tick expressed in unit `to`. Same-unit conversion is identity. A
// coarser-to-finer conversion (e.g. seconds to milliseconds) multiplies
// exactly. A finer-to-coarser conversion divides and fails with
// ErrLossyConversion if the remainder is non-zero — this function never
// silently truncates (spec §4.1).
func NormalizeToEngineTicks(value int64, from, to TimeUnit) (Tick, error) {
	fromNS, err := from.TickDurationNS()
	if err != nil {
		return 0, err
	}
	toNS, err := to.TickDurationNS()
	if err != nil {
		return 0, err
	}
	if fromNS == toNS {
		return Tick(value), nil
	}
	if fromNS > toNS {
		// coarser -> finer: exact multiply, cannot lose precision.
		scale := fromNS / toNS
		return Tick(value * scale), nil
	}
	// finer -> coarser: exact divide only.
	scale := toNS / fromNS
	if value%scale != 0 {
		return 0, fmt.Errorf("%w: value=%d scale=%d", ErrLossyConversion, value, scale)
	}
	return Tick(value / scale), nil
}

// FloorDiv returns the mathematical floor of a/b (b > 0), unlike Go's native
// truncating integer division, so that negative epoch ticks wrap correctly
// (spec §4.1 "floor-div semantics so negative epochs wrap correctly").
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a mod b in [0, b) (b > 0), consistent with FloorDiv.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// toTime converts tick (in unit u) to an absolute time.Time in loc.
func toTime(t Tick, u TimeUnit, loc *time.Location) (time.Time, error) {
	switch u {
	case Seconds:
		return time.Unix(int64(t), 0).In(loc), nil
	case Milliseconds:
		sec := FloorDiv(int64(t), 1000)
		ms := FloorMod(int64(t), 1000)
		return time.Unix(sec, ms*int64(time.Millisecond)).In(loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %d", ErrUnknownTimeUnit, u)
	}
}

// DayOfWeek returns the day of week in loc for engine tick t, with Mon=0 ...
// Sun=6 (spec §4.1). loc must already be validated (see profile_timezone,
// spec §4.3); passing nil selects UTC.
func DayOfWeek(t Tick, u TimeUnit, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.UTC
	}
	tm, err := toTime(t, u, loc)
	if err != nil {
		return 0, err
	}
	// time.Weekday: Sunday=0 ... Saturday=6. Remap to Monday=0 ... Sunday=6.
	wd := int(tm.Weekday())
	return (wd + 6) % 7, nil
}

// BucketsPerDay returns the number of fixed-size buckets of bucketSizeSec
// seconds that tile a 24h day. bucketSizeSec must be positive and evenly
// divide 86400, or ErrBadBucketSize is returned.
func BucketsPerDay(bucketSizeSec int64) (int, error) {
	if bucketSizeSec <= 0 {
		return 0, ErrBadBucketSize
	}
	const secondsPerDay = 86400
	if secondsPerDay%bucketSizeSec != 0 {
		return 0, fmt.Errorf("%w: %d does not evenly tile a day", ErrBadBucketSize, bucketSizeSec)
	}
	return int(secondsPerDay / bucketSizeSec), nil
}

// ToBucket maps engine tick t (in unit u, interpreted in loc) to its bucket
// index in [0, buckets_per_day), derived from seconds-since-local-midnight
// divided by bucketSizeSec (spec §4.1). loc nil selects UTC.
func ToBucket(t Tick, u TimeUnit, loc *time.Location, bucketSizeSec int64) (int, error) {
	if bucketSizeSec <= 0 {
		return 0, ErrBadBucketSize
	}
	if loc == nil {
		loc = time.UTC
	}
	tm, err := toTime(t, u, loc)
	if err != nil {
		return 0, err
	}
	secondsSinceMidnight := int64(tm.Hour())*3600 + int64(tm.Minute())*60 + int64(tm.Second())
	return int(secondsSinceMidnight / bucketSizeSec), nil
}

// ValidateFIFO reports whether arrivals is monotone non-decreasing, the
// FIFO property required of every edge's arrival-time function (spec §3,
// §8 property 1): for t1 < t2, exit(t1) <= exit(t2).
func ValidateFIFO(arrivals []Tick) bool {
	for i := 1; i < len(arrivals); i++ {
		if arrivals[i] < arrivals[i-1] {
			return false
		}
	}
	return true
}
