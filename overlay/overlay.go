package overlay

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/taro-engine/taro/errs"
	"github.com/taro-engine/taro/timetick"
)

// Overlay is the concurrent Live Overlay (spec §4.6). Reads (Lookup) never
// take mu; writes (IngestBatch, Sweep) are fully serialized by it. Zero value
// is not usable; construct with New.
type Overlay struct {
	mu          sync.Mutex
	data        sync.Map // uint32 -> entryData
	capacity    int
	count       atomic.Int64
	log         zerolog.Logger
	readCleanup bool
}

// Option configures an Overlay at construction time.
type Option func(*Overlay)

// WithLogger attaches a logger that records a summary of every Sweep and
// IngestBatch call (spec §4.6 "ingest/sweep summaries"). The default is a
// disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Overlay) { o.log = log }
}

// WithReadCleanup sets whether Lookup opportunistically removes an expired
// entry it encounters (spec §6 "read-cleanup flag", surfaced as
// config.OverlayConfig.ReadCleanup). The default, matching the config
// package's own default, is enabled.
func WithReadCleanup(enabled bool) Option {
	return func(o *Overlay) { o.readCleanup = enabled }
}

// New constructs an Overlay with a fixed entry capacity.
func New(capacity int, opts ...Option) (*Overlay, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	o := &Overlay{capacity: capacity, log: zerolog.Nop(), readCleanup: true}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Lookup returns the live-penalty multiplier for edgeID at query time now,
// and the status that produced it (spec §4.6 "Lookup semantics"). On Expired,
// if read-cleanup is enabled (the default; see WithReadCleanup) it
// opportunistically removes the stale entry with a single CAS, so a
// concurrent overwrite is never clobbered; with read-cleanup disabled the
// entry is left for Sweep or the next IngestBatch to reclaim instead.
func (o *Overlay) Lookup(edgeID uint32, now timetick.Tick) (multiplier float64, status Status) {
	v, ok := o.data.Load(edgeID)
	if !ok {
		return 1.0, Missing
	}
	e := v.(entryData)
	if e.validUntil <= now {
		if o.readCleanup && o.data.CompareAndDelete(edgeID, v) {
			o.count.Add(-1)
		}
		return 1.0, Expired
	}
	if e.speedFactor == 0 {
		return math.Inf(1), Blocked
	}
	return 1.0 / e.speedFactor, Active
}

// Len returns the current entry count. It is exact under mu, a snapshot
// otherwise.
func (o *Overlay) Len() int { return int(o.count.Load()) }

// Capacity returns the fixed entry capacity.
func (o *Overlay) Capacity() int { return o.capacity }

// Sweep removes expired entries under the write lock, up to budget entries
// visited (budget <= 0 means unlimited), and returns the number removed.
// This is the "scheduled sweep primitive" of spec §4.6.
func (o *Overlay) Sweep(now timetick.Tick, budget int) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	removed := o.sweepLocked(now, budget)
	o.log.Debug().Int("removed", removed).Int("len", o.Len()).Msg("overlay swept")
	return removed
}

func (o *Overlay) sweepLocked(now timetick.Tick, budget int) int {
	removed := 0
	visited := 0
	var stale []uint32
	o.data.Range(func(key, value any) bool {
		if budget > 0 && visited >= budget {
			return false
		}
		visited++
		if value.(entryData).validUntil <= now {
			stale = append(stale, key.(uint32))
		}
		return true
	})
	for _, k := range stale {
		if _, ok := o.data.LoadAndDelete(k); ok {
			removed++
		}
	}
	if removed > 0 {
		o.count.Add(int64(-removed))
	}
	return removed
}

// IngestBatch applies updates in list order under the write lock, following
// the capacity policy for new inserts that would otherwise overflow the
// table (spec §4.6 "Batch ingest"). The returned Summary is always populated
// in full; err is a non-nil *errs.LiveUpdateRejectedError (spec §7) whenever
// the batch left any update rejected, so a caller can treat partial
// rejection as a reportable, non-fatal condition without inspecting the
// Summary's fields itself. The overlay remains usable regardless.
func (o *Overlay) IngestBatch(updates []Update, policy CapacityPolicy, now timetick.Tick, sweepBudget int) (summary Summary, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	defer func() {
		o.log.Debug().
			Int("updates", len(updates)).
			Int("accepted", summary.Accepted).
			Int("rejected_capacity", summary.RejectedCapacity).
			Int("rejected_expired", summary.RejectedExpired).
			Int("expired_removed", summary.ExpiredRemoved).
			Int("oldest_evicted", summary.OldestEvicted).
			Msg("overlay batch ingested")
		if summary.RejectedExpired > 0 || summary.RejectedCapacity > 0 {
			err = errs.NewLiveUpdateRejectedError(summary.RejectedExpired, summary.RejectedCapacity)
		}
	}()

	summary.ExpiredRemoved += o.sweepLocked(now, sweepBudget)

	if policy == RejectBatch {
		freeCapacity := o.capacity - int(o.count.Load())
		distinctNew := make(map[uint32]struct{})
		for _, u := range updates {
			if u.ValidUntil <= now {
				continue // already expired at ingest, counted per-item below
			}
			if _, present := o.data.Load(u.EdgeID); present {
				continue // in-place update, not a new insert
			}
			distinctNew[u.EdgeID] = struct{}{}
		}
		if len(distinctNew) > freeCapacity {
			for _, u := range updates {
				if u.ValidUntil <= now {
					summary.RejectedExpired++
				} else {
					summary.RejectedCapacity++
				}
			}
			return summary
		}
	}

	for _, u := range updates {
		if u.ValidUntil <= now {
			summary.RejectedExpired++
			continue
		}
		e := entryData{speedFactor: u.SpeedFactor, validUntil: u.ValidUntil}

		if _, present := o.data.Load(u.EdgeID); present {
			o.data.Store(u.EdgeID, e)
			summary.Accepted++
			continue
		}

		if int(o.count.Load()) < o.capacity {
			o.data.Store(u.EdgeID, e)
			o.count.Add(1)
			summary.Accepted++
			continue
		}

		switch policy {
		case RejectBatch:
			summary.RejectedCapacity++
		case EvictExpiredThenReject:
			summary.ExpiredRemoved += o.sweepLocked(now, sweepBudget)
			if int(o.count.Load()) < o.capacity {
				o.data.Store(u.EdgeID, e)
				o.count.Add(1)
				summary.Accepted++
			} else {
				summary.RejectedCapacity++
			}
		case EvictOldestExpiry:
			summary.ExpiredRemoved += o.sweepLocked(now, sweepBudget)
			if int(o.count.Load()) >= o.capacity {
				if victim, ok := o.oldestExpiryLocked(); ok {
					o.data.Delete(victim)
					o.count.Add(-1)
					summary.OldestEvicted++
				}
			}
			o.data.Store(u.EdgeID, e)
			o.count.Add(1)
			summary.Accepted++
		}
	}
	return summary
}

// oldestExpiryLocked scans for the entry with the smallest valid_until_ticks.
// Called with mu held; O(n) in table size, acceptable since it only runs on
// the already-rare full-table eviction path.
func (o *Overlay) oldestExpiryLocked() (uint32, bool) {
	found := false
	var bestKey uint32
	var bestUntil timetick.Tick
	o.data.Range(func(key, value any) bool {
		e := value.(entryData)
		if !found || e.validUntil < bestUntil {
			found = true
			bestKey = key.(uint32)
			bestUntil = e.validUntil
		}
		return true
	})
	return bestKey, found
}
