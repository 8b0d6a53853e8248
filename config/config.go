// Package config reads the process-level knobs spec §6 lists as the
// "CLI/env boundary (consumed, not defined here)": overlay capacity,
// cleanup budget, read-cleanup flag, capacity policy, and per-planner
// budgets (spec §4.9). It is read once at facade construction and never
// mutated afterward (spec §9 "Global state... there is no runtime-mutable
// global"), using an environment-variable-with-typed-defaults pattern.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/taro-engine/taro/overlay"
	"github.com/taro-engine/taro/planner"
)

// Config holds every environment-sourced default the Route Facade needs to
// wire a search.
type Config struct {
	// BucketSizeSec is the Cost Engine's time-bucket width (spec §4.1).
	BucketSizeSec int64

	// Overlay holds the Live Overlay's capacity and cleanup policy knobs
	// (spec §4.6, §6).
	Overlay OverlayConfig

	// Budget is the default per-request search budget (spec §4.9); a
	// request that supplies its own Budget replaces this one as a whole.
	Budget planner.Budget

	// CoordCacheSize is the total entry capacity of the facade's segmented
	// coordinate-resolution LRU (spec §4.10 step 2), split evenly across
	// CoordCacheShards.
	CoordCacheSize int

	// CoordCacheShards is the number of independent LRU segments the
	// coordinate-resolution cache is sharded into (spec §5 "segmented LRU
	// ... thread-safe with per-segment locking").
	CoordCacheShards int

	// DefaultMaxSnapDistance is used when a request does not supply its own
	// snap distance (spec §4.10 step 1).
	DefaultMaxSnapDistance float64
}

// OverlayConfig configures how a Live Overlay is constructed and swept.
type OverlayConfig struct {
	Capacity       int
	CleanupBudget  int // 0 means unlimited per sweep
	ReadCleanup    bool
	CapacityPolicy overlay.CapacityPolicy
	SweepInterval  time.Duration
}

// Load reads Config from environment variables, optionally seeded from a
// .env file in the working directory (godotenv.Load()-then-os.LookupEnv).
// Unset variables fall back to the documented defaults below.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BucketSizeSec: getEnvInt64("TARO_BUCKET_SIZE_SEC", 3600),
		Overlay: OverlayConfig{
			Capacity:       getEnvInt("TARO_OVERLAY_CAPACITY", 1_000_000),
			CleanupBudget:  getEnvInt("TARO_OVERLAY_CLEANUP_BUDGET", 10_000),
			ReadCleanup:    getEnvBool("TARO_OVERLAY_READ_CLEANUP", true),
			CapacityPolicy: capacityPolicyFromEnv("TARO_OVERLAY_CAPACITY_POLICY", overlay.EvictExpiredThenReject),
			SweepInterval:  time.Duration(getEnvInt("TARO_OVERLAY_SWEEP_INTERVAL_SEC", 30)) * time.Second,
		},
		Budget: planner.Budget{
			RowWorkLimit:     getEnvInt64("TARO_BUDGET_ROW_WORK", 200_000),
			RowLabelLimit:    getEnvInt64("TARO_BUDGET_ROW_LABEL", 400_000),
			RowFrontierLimit: getEnvInt64("TARO_BUDGET_ROW_FRONTIER", 200_000),
			RequestWorkLimit: getEnvInt64("TARO_BUDGET_REQUEST_WORK", 2_000_000),
			SettledLimit:     getEnvInt64("TARO_BUDGET_SETTLED", 2_000_000),
		},
		CoordCacheSize:         getEnvInt("TARO_COORD_CACHE_SIZE", 4096),
		CoordCacheShards:       getEnvInt("TARO_COORD_CACHE_SHARDS", 16),
		DefaultMaxSnapDistance: getEnvFloat("TARO_DEFAULT_MAX_SNAP_DISTANCE", 1000.0),
	}
}

func capacityPolicyFromEnv(key string, fallback overlay.CapacityPolicy) overlay.CapacityPolicy {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch v {
	case "REJECT_BATCH":
		return overlay.RejectBatch
	case "EVICT_EXPIRED_THEN_REJECT":
		return overlay.EvictExpiredThenReject
	case "EVICT_OLDEST_EXPIRY":
		return overlay.EvictOldestExpiry
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
