package model

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/taro-engine/taro/idmap"
	"github.com/taro-engine/taro/profile"
	"github.com/taro-engine/taro/spatial"
	"github.com/taro-engine/taro/timetick"
)

const supportedSchemaVersion uint64 = 1

// Option configures Validate's load diagnostics. The zero value logs
// nothing, matching the hot path's silence (spec §5); a caller that wants
// load-time visibility opts in with WithLogger.
type Option func(*validateConfig)

type validateConfig struct {
	log zerolog.Logger
}

// WithLogger attaches a logger that records the outcome of one Validate
// call: a debug summary on success, a warning with the contract violation
// on failure.
func WithLogger(log zerolog.Logger) Option {
	return func(c *validateConfig) { c.log = log }
}

// Validate performs every check spec §4.3 requires before a Raw buffer may
// become a servable Store. Any violation returns a *errs.ModelContractError
// and no Store is constructed (spec: "fail-closed ... no partial
// construction").
func Validate(raw *Raw, opts ...Option) (store *Store, err error) {
	cfg := validateConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	defer func() {
		if err != nil {
			cfg.log.Warn().Err(err).Msg("model validation failed")
			return
		}
		cfg.log.Debug().
			Uint32("node_count", store.topology.NodeCount).
			Uint32("edge_count", store.topology.EdgeCount).
			Msg("model validated")
	}()

	if err := validateMetadata(raw.Metadata); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(raw.Metadata.ProfileTimezone)
	if err != nil {
		return nil, contractErr("metadata.profile_timezone", "not a valid IANA zone: %v", err)
	}

	if err := validateTopology(raw.Topology); err != nil {
		return nil, err
	}

	profileStore, err := profile.NewStore(toRawProfiles(raw.Profiles), NoProfile)
	if err != nil {
		return nil, contractErr("profiles", "%v", err)
	}
	if err := validateEdgeProfileReferences(raw.Topology, raw.Profiles); err != nil {
		return nil, err
	}

	turnCosts, err := validateTurnCosts(raw.TurnCosts, raw.Topology.EdgeCount)
	if err != nil {
		return nil, err
	}

	var tree *spatial.Tree
	if raw.Spatial != nil {
		tree, err = spatial.NewTree(toRawSpatialIndex(raw.Spatial), raw.Topology.CoordX, raw.Topology.CoordY, raw.Topology.NodeCount)
		if err != nil {
			return nil, contractErr("spatial_index", "%v", err)
		}
	}

	if err := validateLandmarks(raw.Landmarks, raw.Topology.NodeCount); err != nil {
		return nil, err
	}

	var mapper *idmap.Mapper
	if raw.ExternalIDs != nil {
		mapper, err = buildIDMapper(raw.ExternalIDs)
		if err != nil {
			return nil, err
		}
	}

	return &Store{
		metadata:  raw.Metadata,
		topology:  raw.Topology,
		profiles:  profileStore,
		turnCosts: turnCosts,
		spatial:   tree,
		landmarks: raw.Landmarks,
		ids:       mapper,
		loc:       loc,
	}, nil
}

func validateMetadata(m Metadata) error {
	if m.SchemaVersion != supportedSchemaVersion {
		return contractErr("metadata.schema_version", "want %d, got %d", supportedSchemaVersion, m.SchemaVersion)
	}
	if m.TimeUnit != timetick.Seconds && m.TimeUnit != timetick.Milliseconds {
		return contractErr("metadata.time_unit", "unrecognized value %d", m.TimeUnit)
	}
	if err := timetick.ValidateTickDuration(m.TimeUnit, m.TickDurationNS); err != nil {
		return contractErr("metadata.tick_duration_ns", "%v", err)
	}
	return nil
}

func validateTopology(t Topology) error {
	if len(t.FirstEdge) != int(t.NodeCount)+1 {
		return contractErr("topology.first_edge", "len=%d, want node_count+1=%d", len(t.FirstEdge), t.NodeCount+1)
	}
	for i := 1; i < len(t.FirstEdge); i++ {
		if t.FirstEdge[i] < t.FirstEdge[i-1] {
			return contractErr("topology.first_edge", "not monotone non-decreasing at index %d", i)
		}
	}
	if t.FirstEdge[len(t.FirstEdge)-1] != t.EdgeCount {
		return contractErr("topology.first_edge", "last entry %d != edge_count %d", t.FirstEdge[len(t.FirstEdge)-1], t.EdgeCount)
	}
	if len(t.EdgeTarget) != int(t.EdgeCount) {
		return contractErr("topology.edge_target", "len=%d, want edge_count=%d", len(t.EdgeTarget), t.EdgeCount)
	}
	for e, target := range t.EdgeTarget {
		if target >= t.NodeCount {
			return contractErr("topology.edge_target", "edge %d targets out-of-range node %d", e, target)
		}
	}
	if len(t.EdgeOrigin) != int(t.EdgeCount) {
		return contractErr("topology.edge_origin", "len=%d, want edge_count=%d", len(t.EdgeOrigin), t.EdgeCount)
	}
	for e, origin := range t.EdgeOrigin {
		if origin >= t.NodeCount {
			return contractErr("topology.edge_origin", "edge %d origin is out-of-range node %d", e, origin)
		}
	}
	if len(t.BaseWeight) != int(t.EdgeCount) {
		return contractErr("topology.base_weights", "len=%d, want edge_count=%d", len(t.BaseWeight), t.EdgeCount)
	}
	for e, w := range t.BaseWeight {
		if isNonFiniteOrNegative(float64(w)) {
			return contractErr("topology.base_weights", "edge %d has non-finite or negative weight %v", e, w)
		}
	}
	if len(t.EdgeProfileID) != int(t.EdgeCount) {
		return contractErr("topology.edge_profile_id", "len=%d, want edge_count=%d", len(t.EdgeProfileID), t.EdgeCount)
	}
	if len(t.CoordX) != int(t.NodeCount) || len(t.CoordY) != int(t.NodeCount) {
		return contractErr("topology.coordinates", "len=%d/%d, want node_count=%d", len(t.CoordX), len(t.CoordY), t.NodeCount)
	}
	return nil
}

func isNonFiniteOrNegative(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v < 0
}

func validateEdgeProfileReferences(t Topology, profiles []TemporalProfile) error {
	known := make(map[uint32]struct{}, len(profiles))
	for _, p := range profiles {
		known[p.ProfileID] = struct{}{}
	}
	for e, pid := range t.EdgeProfileID {
		if pid == NoProfile {
			continue
		}
		if _, ok := known[pid]; !ok {
			return contractErr("topology.edge_profile_id", "edge %d references unknown profile %d", e, pid)
		}
	}
	return nil
}

func validateTurnCosts(raw []TurnCost, edgeCount uint32) ([]TurnCost, error) {
	sorted := append([]TurnCost(nil), raw...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].FromEdge != sorted[j].FromEdge {
			return sorted[i].FromEdge < sorted[j].FromEdge
		}
		return sorted[i].ToEdge < sorted[j].ToEdge
	})
	for i, tc := range sorted {
		if tc.FromEdge >= edgeCount || tc.ToEdge >= edgeCount {
			return nil, contractErr("turn_costs", "entry %d references out-of-range edge (from=%d to=%d edge_count=%d)", i, tc.FromEdge, tc.ToEdge, edgeCount)
		}
		if i > 0 && sorted[i-1].FromEdge == tc.FromEdge && sorted[i-1].ToEdge == tc.ToEdge {
			return nil, contractErr("turn_costs", "duplicate entry (from=%d to=%d)", tc.FromEdge, tc.ToEdge)
		}
	}
	return sorted, nil
}

func validateLandmarks(landmarks []Landmark, nodeCount uint32) error {
	for i, lm := range landmarks {
		if lm.NodeIdx >= nodeCount {
			return contractErr("landmarks", "landmark %d references out-of-range node %d", i, lm.NodeIdx)
		}
		if len(lm.Forward) != int(nodeCount) || len(lm.Backward) != int(nodeCount) {
			return contractErr("landmarks", "landmark %d distance vectors have len %d/%d, want node_count=%d", i, len(lm.Forward), len(lm.Backward), nodeCount)
		}
	}
	return nil
}

func buildIDMapper(externalIDs []uint64) (*idmap.Mapper, error) {
	strs := make([]string, len(externalIDs))
	for i, v := range externalIDs {
		strs[i] = strconv.FormatUint(v, 10)
	}
	mapper, err := idmap.New(strs)
	if err != nil {
		return nil, contractErr("id_mapping", "%v", err)
	}
	return mapper, nil
}

func toRawProfiles(profiles []TemporalProfile) []profile.RawProfile {
	out := make([]profile.RawProfile, len(profiles))
	for i, p := range profiles {
		out[i] = profile.RawProfile{ProfileID: p.ProfileID, DayMask: p.DayMask, Buckets: p.Buckets, Multiplier: p.Multiplier}
	}
	return out
}

func toRawSpatialIndex(idx *SpatialIndex) *spatial.RawIndex {
	nodes := make([]spatial.RawNode, len(idx.Nodes))
	for i, n := range idx.Nodes {
		nodes[i] = spatial.RawNode{
			SplitValue: n.SplitValue, Left: n.Left, Right: n.Right,
			ItemStart: n.ItemStart, ItemCount: n.ItemCount,
			SplitAxis: n.SplitAxis, IsLeaf: n.IsLeaf,
		}
	}
	return &spatial.RawIndex{Nodes: nodes, LeafItems: idx.LeafItems, RootIndex: idx.RootIndex}
}
