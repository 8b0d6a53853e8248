package profile

import (
	"fmt"
	"math"

	"github.com/taro-engine/taro/timetick"
)

// Store is the validated, read-only Profile Store (spec §4.5). Build once
// via NewStore; all methods are safe for concurrent use.
type Store struct {
	byID map[uint32]*entry
}

// NewStore validates profiles (spec §4.3's profile-table invariants) and
// builds a Store. noProfileSentinel is the model package's reserved "no
// profile" id (passed in rather than imported, to keep this package free of
// a dependency on model and avoid an import cycle, since model depends on
// profile to build its Store).
func NewStore(profiles []RawProfile, noProfileSentinel uint32) (*Store, error) {
	byID := make(map[uint32]*entry, len(profiles))
	for _, raw := range profiles {
		if raw.ProfileID == noProfileSentinel {
			return nil, fmt.Errorf("%w: profile_id=%d", ErrReservedProfileID, raw.ProfileID)
		}
		if _, dup := byID[raw.ProfileID]; dup {
			return nil, fmt.Errorf("%w: profile_id=%d", ErrDuplicateProfileID, raw.ProfileID)
		}
		if raw.DayMask == 0 || raw.DayMask > 0x7F {
			return nil, fmt.Errorf("%w: profile_id=%d day_mask=%#x", ErrBadDayMask, raw.ProfileID, raw.DayMask)
		}
		if len(raw.Buckets) == 0 {
			return nil, fmt.Errorf("%w: profile_id=%d", ErrEmptyBuckets, raw.ProfileID)
		}
		if !finiteNonNegative(float64(raw.Multiplier)) {
			return nil, fmt.Errorf("%w: profile_id=%d multiplier=%v", ErrNonFiniteBucket, raw.ProfileID, raw.Multiplier)
		}
		sum, min, max := 0.0, math.Inf(1), math.Inf(-1)
		effs := make([]float64, len(raw.Buckets))
		for i, b := range raw.Buckets {
			v := float64(b)
			if !finiteNonNegative(v) {
				return nil, fmt.Errorf("%w: profile_id=%d bucket=%v", ErrNonFiniteBucket, raw.ProfileID, b)
			}
			eff := v * float64(raw.Multiplier)
			effs[i] = eff
			sum += eff
			if eff < min {
				min = eff
			}
			if eff > max {
				max = eff
			}
		}
		if err := validateFIFOBoundaries(effs); err != nil {
			return nil, fmt.Errorf("%w: profile_id=%d: %v", ErrFIFOViolation, raw.ProfileID, err)
		}
		byID[raw.ProfileID] = &entry{
			raw: raw,
			stats: stats{
				avg: sum / float64(len(raw.Buckets)),
				min: min,
				max: max,
			},
		}
	}
	return &Store{byID: byID}, nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// validateFIFOBoundaries checks spec §4.7 step 7's synthesis-side FIFO
// invariant across every internal bucket boundary of a profile: consecutive
// buckets within one day must not drop so sharply that the composed
// arrival-time function could become non-monotone. The day-to-day wrap
// (last bucket back to the first) is deliberately excluded: midnight is a
// legitimate reset point (e.g. evening congestion clearing overnight), not
// a boundary the arrival-time function is required to stay continuous
// across.
//
// effs holds the profile's effective (bucket * global multiplier) values.
// Simulating an entry at the start of each bucket and composing
// exit_tick = entry_tick + traversal yields a sequence that is monotone
// non-decreasing exactly when effs[b+1] >= effs[b] - 1 holds at every
// internal boundary — so the check reduces to timetick.ValidateFIFO over
// that composed sequence, the same helper the serving runtime uses for
// arrival-time monotonicity elsewhere.
func validateFIFOBoundaries(effs []float64) error {
	n := len(effs)
	if n < 2 {
		return nil
	}
	const scale = 1e6 // preserves sub-unit differences in effs when rounding to an integer Tick.
	arrivals := make([]timetick.Tick, n)
	for b := 0; b < n; b++ {
		arrivals[b] = timetick.Tick(math.Round((float64(b) + effs[b]) * scale))
	}
	if timetick.ValidateFIFO(arrivals) {
		return nil
	}
	for b := 0; b < n-1; b++ {
		if effs[b+1] < effs[b]-1 {
			return fmt.Errorf("bucket %d -> %d: %v < %v - 1", b, b+1, effs[b+1], effs[b])
		}
	}
	return fmt.Errorf("bucket boundary violates FIFO")
}

// HasProfile reports whether id is present in the store.
func (s *Store) HasProfile(id uint32) bool {
	_, ok := s.byID[id]
	return ok
}

// BucketCount returns the number of buckets for id, or 0 if id is absent.
func (s *Store) BucketCount(id uint32) int {
	e, ok := s.byID[id]
	if !ok {
		return 0
	}
	return len(e.raw.Buckets)
}

// IsActiveOnDay reports whether profile id's day_mask has bit dow set
// (dow in [0,6], Mon=0). Returns false for an absent profile or an
// out-of-range dow.
func (s *Store) IsActiveOnDay(id uint32, dow int) bool {
	if dow < 0 || dow > 6 {
		return false
	}
	e, ok := s.byID[id]
	if !ok {
		return false
	}
	return e.raw.DayMask&(1<<uint(dow)) != 0
}

// selectProfileForDay returns id's entry and true if id exists and is active
// on dow; otherwise it returns (nil, false), signaling the caller to fall
// back to the neutral multiplier (spec §4.5).
func (s *Store) selectProfileForDay(id uint32, dow int) (*entry, bool) {
	if dow < 0 || dow > 6 {
		return nil, false
	}
	e, ok := s.byID[id]
	if !ok || e.raw.DayMask&(1<<uint(dow)) == 0 {
		return nil, false
	}
	return e, true
}

// GetMultiplier returns the effective multiplier (buckets[bucket] *
// global_multiplier) for id at the given bucket index, wrapped modulo the
// profile's bucket count. Returns NeutralMultiplier for an absent profile.
func (s *Store) GetMultiplier(id uint32, bucket int) float64 {
	e, ok := s.byID[id]
	if !ok {
		return NeutralMultiplier
	}
	return effective(e, bucket)
}

// GetMultiplierForDay returns GetMultiplier(id, bucket) if id is active on
// dow, else NeutralMultiplier (spec §4.5).
func (s *Store) GetMultiplierForDay(id uint32, dow, bucket int) float64 {
	e, ok := s.selectProfileForDay(id, dow)
	if !ok {
		return NeutralMultiplier
	}
	return effective(e, bucket)
}

func effective(e *entry, bucket int) float64 {
	n := len(e.raw.Buckets)
	idx := ((bucket % n) + n) % n
	return float64(e.raw.Buckets[idx]) * float64(e.raw.Multiplier)
}

// Interpolate returns the cyclic linear interpolation of id's effective
// multiplier at a fractional bucket index (spec §4.5). An exact integer
// fractionalBucket returns that bucket's value exactly (idempotence, spec §8
// property 8); negative or overflowing values wrap modulo the bucket count
// in both directions. Returns NeutralMultiplier for an absent profile, and
// ErrNaNFractionalBucket for a non-finite fractionalBucket.
func (s *Store) Interpolate(id uint32, fractionalBucket float64) (float64, error) {
	if math.IsNaN(fractionalBucket) || math.IsInf(fractionalBucket, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNaNFractionalBucket, fractionalBucket)
	}
	e, ok := s.byID[id]
	if !ok {
		return NeutralMultiplier, nil
	}
	n := float64(len(e.raw.Buckets))
	// Wrap into [0, n) before splitting into integer/fractional parts so
	// negative and overflowing inputs cycle correctly in both directions.
	wrapped := math.Mod(fractionalBucket, n)
	if wrapped < 0 {
		wrapped += n
	}
	lo := math.Floor(wrapped)
	frac := wrapped - lo
	loIdx := int(lo) % len(e.raw.Buckets)
	hiIdx := (loIdx + 1) % len(e.raw.Buckets)
	loVal := effective(e, loIdx)
	hiVal := effective(e, hiIdx)
	return loVal + frac*(hiVal-loVal), nil
}

// AvgMultiplier, MinMultiplier, and MaxMultiplier expose the per-profile
// metadata view planners use as admissible-heuristic bounds (spec §4.5).
func (s *Store) AvgMultiplier(id uint32) float64 {
	if e, ok := s.byID[id]; ok {
		return e.stats.avg
	}
	return NeutralMultiplier
}

func (s *Store) MinMultiplier(id uint32) float64 {
	if e, ok := s.byID[id]; ok {
		return e.stats.min
	}
	return NeutralMultiplier
}

func (s *Store) MaxMultiplier(id uint32) float64 {
	if e, ok := s.byID[id]; ok {
		return e.stats.max
	}
	return NeutralMultiplier
}
