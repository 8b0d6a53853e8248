package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/taro-engine/taro/idmap"
	"github.com/taro-engine/taro/profile"
	"github.com/taro-engine/taro/spatial"
)

// Store is the validated, read-only Model Store (spec §4.3). Build it with
// Validate(Decode(buf)); it is then immutable and safe for concurrent use
// for the process lifetime.
type Store struct {
	metadata  Metadata
	topology  Topology
	profiles  *profile.Store
	turnCosts []TurnCost // sorted by (FromEdge, ToEdge)
	spatial   *spatial.Tree
	landmarks []Landmark
	ids       *idmap.Mapper
	loc       *time.Location
}

// Metadata returns the model's header.
func (s *Store) Metadata() Metadata { return s.metadata }

// Location returns the parsed profile_timezone (spec §4.3).
func (s *Store) Location() *time.Location { return s.loc }

// NodeCount and EdgeCount return the CSR topology's dimensions.
func (s *Store) NodeCount() uint32 { return s.topology.NodeCount }
func (s *Store) EdgeCount() uint32 { return s.topology.EdgeCount }

// OutgoingEdges returns the half-open [start, end) range into the edge
// arrays for node's outgoing edges (spec §3 "Edge").
func (s *Store) OutgoingEdges(node uint32) (start, end uint32, err error) {
	if node >= s.topology.NodeCount {
		return 0, 0, fmt.Errorf("model: node %d out of range [0,%d)", node, s.topology.NodeCount)
	}
	return s.topology.FirstEdge[node], s.topology.FirstEdge[node+1], nil
}

// EdgeTarget returns the head node of edge e.
func (s *Store) EdgeTarget(e uint32) uint32 { return s.topology.EdgeTarget[e] }

// EdgeOrigin returns the tail node of edge e.
func (s *Store) EdgeOrigin(e uint32) uint32 { return s.topology.EdgeOrigin[e] }

// BaseWeight returns edge e's non-negative finite base weight.
func (s *Store) BaseWeight(e uint32) float32 { return s.topology.BaseWeight[e] }

// EdgeProfileID returns edge e's profile reference, or NoProfile.
func (s *Store) EdgeProfileID(e uint32) uint32 { return s.topology.EdgeProfileID[e] }

// Coordinate returns node's (x, y) pair, interpreted per the active
// addressing strategy (planar or lat/lon).
func (s *Store) Coordinate(node uint32) (x, y float64) {
	return s.topology.CoordX[node], s.topology.CoordY[node]
}

// Profiles returns the validated Profile Store (spec §4.5).
func (s *Store) Profiles() *profile.Store { return s.profiles }

// Spatial returns the validated KD-tree, or nil if the model carries none
// (spec §4.4: "loading must then also tolerate a missing spatial index block").
func (s *Store) Spatial() *spatial.Tree { return s.spatial }

// IDs returns the external/internal id mapper, or nil if the model carries
// no IdMapping table.
func (s *Store) IDs() *idmap.Mapper { return s.ids }

// Landmarks returns the precomputed ALT landmark distance tables.
func (s *Store) Landmarks() []Landmark { return s.landmarks }

// TurnCostCount returns the number of entries in the turn-cost table.
func (s *Store) TurnCostCount() int { return len(s.turnCosts) }

// TurnPenalty returns the penalty in seconds for transitioning from fromEdge
// to toEdge, and whether a turn-cost entry exists for that pair. A negative
// penalty marks the transition as forbidden (spec §3 "Turn cost").
// Lookup is O(log T) via binary search over the sorted table.
func (s *Store) TurnPenalty(fromEdge, toEdge uint32) (penalty float32, found bool) {
	i := sort.Search(len(s.turnCosts), func(i int) bool {
		tc := s.turnCosts[i]
		if tc.FromEdge != fromEdge {
			return tc.FromEdge >= fromEdge
		}
		return tc.ToEdge >= toEdge
	})
	if i < len(s.turnCosts) && s.turnCosts[i].FromEdge == fromEdge && s.turnCosts[i].ToEdge == toEdge {
		return s.turnCosts[i].PenaltySeconds, true
	}
	return 0, false
}
