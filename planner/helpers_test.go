package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/timetick"
)

// buildLinearChain builds the spec §8 "Linear chain" fixture: nodes
// N0..N4, edges (i, i+1) with base weight 1.0 and a neutral profile.
func buildLinearChain(t *testing.T) *model.Store {
	t.Helper()
	const n = 5
	firstEdge := make([]uint32, n+1)
	edgeTarget := make([]uint32, n-1)
	edgeOrigin := make([]uint32, n-1)
	baseWeight := make([]float32, n-1)
	edgeProfileID := make([]uint32, n-1)
	coordX := make([]float64, n)
	coordY := make([]float64, n)
	for i := 0; i < n-1; i++ {
		firstEdge[i] = uint32(i)
		edgeTarget[i] = uint32(i + 1)
		edgeOrigin[i] = uint32(i)
		baseWeight[i] = 1.0
		edgeProfileID[i] = model.NoProfile
		coordX[i] = float64(i)
	}
	firstEdge[n-1] = uint32(n - 1)
	firstEdge[n] = uint32(n - 1)
	coordX[n-1] = float64(n - 1)

	raw := &model.Raw{
		Metadata: model.Metadata{
			SchemaVersion:   1,
			TimeUnit:        timetick.Seconds,
			TickDurationNS:  1_000_000_000,
			ProfileTimezone: "UTC",
		},
		Topology: model.Topology{
			NodeCount:     n,
			EdgeCount:     uint32(n - 1),
			FirstEdge:     firstEdge,
			EdgeTarget:    edgeTarget,
			EdgeOrigin:    edgeOrigin,
			BaseWeight:    baseWeight,
			EdgeProfileID: edgeProfileID,
			CoordX:        coordX,
			CoordY:        coordY,
		},
	}
	store, err := model.Validate(raw)
	require.NoError(t, err)
	return store
}
