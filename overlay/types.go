package overlay

import "github.com/taro-engine/taro/timetick"

// Update is one caller-supplied live-speed observation for IngestBatch
// (spec §4.6 "Batch ingest").
type Update struct {
	EdgeID      uint32
	SpeedFactor float64
	ValidUntil  timetick.Tick
}

// entryData is the immutable value stored per edge id. Replacing rather than
// mutating in place lets CompareAndDelete safely race against a concurrent
// overwrite during the opportunistic-removal read path.
type entryData struct {
	speedFactor float64
	validUntil  timetick.Tick
}

// Status is the outcome of a Lookup (spec §4.6 "Lookup semantics").
type Status uint8

const (
	Missing Status = iota
	Expired
	Blocked
	Active
)

func (s Status) String() string {
	switch s {
	case Missing:
		return "MISSING"
	case Expired:
		return "EXPIRED"
	case Blocked:
		return "BLOCKED"
	case Active:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// CapacityPolicy selects how IngestBatch behaves when the table is full and
// an update would insert a new edge id (spec §4.6).
type CapacityPolicy uint8

const (
	// RejectBatch precounts distinct new edge ids against free capacity and
	// rejects the whole non-expired portion of the batch if it would not fit,
	// without mutating the table.
	RejectBatch CapacityPolicy = iota
	// EvictExpiredThenReject sweeps expired entries and retries the single
	// insert once; if still full, that update is rejected individually.
	EvictExpiredThenReject
	// EvictOldestExpiry sweeps expired entries, then if still full evicts the
	// single entry with the smallest valid_until_ticks to make room.
	EvictOldestExpiry
)

// Summary reports the outcome of a single IngestBatch call (spec §4.6).
type Summary struct {
	Accepted         int
	RejectedExpired  int
	RejectedCapacity int
	ExpiredRemoved   int
	OldestEvicted    int
}
