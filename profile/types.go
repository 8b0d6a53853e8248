package profile

// RawProfile mirrors the on-disk TemporalProfile table entry (spec §3, §6):
// a profile_id, the day-of-week bitmask it is active on, its bucket vector,
// and a global multiplier applied to every bucket.
type RawProfile struct {
	ProfileID  uint32
	DayMask    uint32
	Buckets    []float32
	Multiplier float32
}

// stats caches the avg/min/max effective multiplier for one profile, used
// by planner heuristics (spec §4.5: "exposes per-profile avg/min/max
// multiplier (the 'metadata' view) for planner heuristics").
type stats struct {
	avg, min, max float64
}

// entry is one validated, ready-to-query profile.
type entry struct {
	raw   RawProfile
	stats stats
}

// NeutralMultiplier is returned whenever a profile is missing or inactive on
// the requested day (spec §4.5).
const NeutralMultiplier = 1.0
