package model

import "github.com/taro-engine/taro/timetick"

// NoProfile is the sentinel edge_profile_id meaning "no profile" (neutral
// multiplier). Per spec §9's Open Question, this is resolved explicitly:
// profile id 0 is ordinary and valid whenever the loaded profile table
// actually contains an entry with profile_id == 0; only NoProfile is ever
// treated as the absence of a profile.
const NoProfile uint32 = 0xFFFFFFFF

// Metadata is the model's self-describing header (spec §6 Metadata table).
type Metadata struct {
	SchemaVersion   uint64
	ModelVersion    string
	TimeUnit        timetick.TimeUnit
	TickDurationNS  int64
	ProfileTimezone string
}

// Topology is the CSR road graph (spec §3 "Edge", §6 GraphTopology table).
type Topology struct {
	NodeCount     uint32
	EdgeCount     uint32
	FirstEdge     []uint32  // len NodeCount+1
	EdgeTarget    []uint32  // len EdgeCount
	EdgeOrigin    []uint32  // len EdgeCount
	BaseWeight    []float32 // len EdgeCount
	EdgeProfileID []uint32  // len EdgeCount
	CoordX        []float64 // len NodeCount
	CoordY        []float64 // len NodeCount
}

// TemporalProfile is one time-bucketed multiplier profile (spec §3, §6).
type TemporalProfile struct {
	ProfileID  uint32
	DayMask    uint32
	Buckets    []float32
	Multiplier float32
}

// TurnCost is one (from_edge, to_edge) transition penalty (spec §3, §6).
// Negative PenaltySeconds marks the transition as forbidden.
type TurnCost struct {
	FromEdge       uint32
	ToEdge         uint32
	PenaltySeconds float32
}

// KDNode is one node of the implicit KD-tree spatial index (spec §3, §6).
type KDNode struct {
	SplitValue float64
	Left       int32 // -1 if absent
	Right      int32 // -1 if absent
	ItemStart  uint32
	ItemCount  uint32
	SplitAxis  uint8 // 0 or 1
	IsLeaf     bool
}

// SpatialIndex is the raw KD-tree (spec §3 "Spatial index", §6 SpatialIndex table).
type SpatialIndex struct {
	Nodes     []KDNode
	LeafItems []uint32 // node ids referenced by leaves
	RootIndex uint32
}

// Landmark carries precomputed forward/backward distances from one landmark
// node, used by the ALT heuristic (spec §4.9, §6 Landmark table).
type Landmark struct {
	NodeIdx  uint32
	Forward  []float32 // len NodeCount
	Backward []float32 // len NodeCount
}

// Raw is the fully decoded, not-yet-validated model buffer contents.
// Validate consumes a Raw and produces a Store, or an error.
type Raw struct {
	Metadata     Metadata
	Topology     Topology
	Profiles     []TemporalProfile
	TurnCosts    []TurnCost
	Spatial      *SpatialIndex // nil if the model carries no spatial index
	Landmarks    []Landmark
	ExternalIDs  []uint64 // nil if the model carries no IdMapping table
}
