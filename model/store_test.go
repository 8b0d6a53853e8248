package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/timetick"
)

// linearChain builds the 5-node/4-edge chain from spec §8 scenario 1:
// N0->N1->N2->N3->N4, each edge base weight 1.0, no profile.
func linearChain(t *testing.T) *model.Raw {
	t.Helper()
	return &model.Raw{
		Metadata: model.Metadata{
			SchemaVersion:   1,
			TimeUnit:        timetick.Seconds,
			TickDurationNS:  1_000_000_000,
			ProfileTimezone: "UTC",
		},
		Topology: model.Topology{
			NodeCount:     5,
			EdgeCount:     4,
			FirstEdge:     []uint32{0, 1, 2, 3, 4, 4},
			EdgeTarget:    []uint32{1, 2, 3, 4},
			EdgeOrigin:    []uint32{0, 1, 2, 3},
			BaseWeight:    []float32{1, 1, 1, 1},
			EdgeProfileID: []uint32{model.NoProfile, model.NoProfile, model.NoProfile, model.NoProfile},
			CoordX:        []float64{0, 1, 2, 3, 4},
			CoordY:        []float64{0, 0, 0, 0, 0},
		},
	}
}

func TestValidateLinearChain(t *testing.T) {
	raw := linearChain(t)
	store, err := model.Validate(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 5, store.NodeCount())
	assert.EqualValues(t, 4, store.EdgeCount())

	start, end, err := store.OutgoingEdges(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, start)
	assert.EqualValues(t, 2, end)
}

func TestValidateRejectsBadSchemaVersion(t *testing.T) {
	raw := linearChain(t)
	raw.Metadata.SchemaVersion = 2
	_, err := model.Validate(raw)
	require.Error(t, err)
}

func TestValidateRejectsBadTickDuration(t *testing.T) {
	raw := linearChain(t)
	raw.Metadata.TickDurationNS = 1
	_, err := model.Validate(raw)
	require.Error(t, err)
}

func TestValidateRejectsBadTimezone(t *testing.T) {
	raw := linearChain(t)
	raw.Metadata.ProfileTimezone = "Not/AZone"
	_, err := model.Validate(raw)
	require.Error(t, err)
}

func TestValidateRejectsNonMonotoneFirstEdge(t *testing.T) {
	raw := linearChain(t)
	raw.Topology.FirstEdge = []uint32{0, 2, 1, 3, 4, 4}
	_, err := model.Validate(raw)
	require.Error(t, err)
}

func TestValidateRejectsOutOfRangeEdgeTarget(t *testing.T) {
	raw := linearChain(t)
	raw.Topology.EdgeTarget[0] = 99
	_, err := model.Validate(raw)
	require.Error(t, err)
}

func TestValidateRejectsUnknownEdgeProfile(t *testing.T) {
	raw := linearChain(t)
	raw.Topology.EdgeProfileID[0] = 42
	_, err := model.Validate(raw)
	require.Error(t, err)
}

func TestValidateRejectsDuplicateTurnCosts(t *testing.T) {
	raw := linearChain(t)
	raw.TurnCosts = []model.TurnCost{
		{FromEdge: 0, ToEdge: 1, PenaltySeconds: 1},
		{FromEdge: 0, ToEdge: 1, PenaltySeconds: 2},
	}
	_, err := model.Validate(raw)
	require.Error(t, err)
}

func TestTurnPenaltyLookup(t *testing.T) {
	raw := linearChain(t)
	raw.TurnCosts = []model.TurnCost{
		{FromEdge: 2, ToEdge: 3, PenaltySeconds: 5},
		{FromEdge: 0, ToEdge: 1, PenaltySeconds: -1},
	}
	store, err := model.Validate(raw)
	require.NoError(t, err)

	p, found := store.TurnPenalty(2, 3)
	require.True(t, found)
	assert.EqualValues(t, 5, p)

	p, found = store.TurnPenalty(0, 1)
	require.True(t, found)
	assert.EqualValues(t, -1, p)

	_, found = store.TurnPenalty(1, 2)
	assert.False(t, found)
}

func TestValidateBuildsIDMapping(t *testing.T) {
	raw := linearChain(t)
	raw.ExternalIDs = []uint64{100, 200, 300, 400, 500}
	store, err := model.Validate(raw)
	require.NoError(t, err)
	require.NotNil(t, store.IDs())

	internal, err := store.IDs().ToInternal("300")
	require.NoError(t, err)
	assert.EqualValues(t, 2, internal)
}
