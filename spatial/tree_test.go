package spatial_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/spatial"
)

// buildBalanced constructs a simple balanced KD-tree over coordX/coordY by
// recursively splitting the median, alternating axes. It exists only to
// exercise Tree/Validate with a realistic (non-trivial) shape.
func buildBalanced(ids []uint32, coordX, coordY []float64) *spatial.RawIndex {
	var nodes []spatial.RawNode
	var leafItems []uint32

	var build func(items []uint32, depth int) int32
	build = func(items []uint32, depth int) int32 {
		if len(items) <= 2 {
			start := len(leafItems)
			leafItems = append(leafItems, items...)
			nodes = append(nodes, spatial.RawNode{
				IsLeaf: true, ItemStart: uint32(start), ItemCount: uint32(len(items)),
			})
			return int32(len(nodes) - 1)
		}
		axis := uint8(depth % 2)
		sorted := append([]uint32(nil), items...)
		key := coordX
		if axis == 1 {
			key = coordY
		}
		// insertion sort by key (small N in tests)
		for i := 1; i < len(sorted); i++ {
			for j := i; j > 0 && key[sorted[j]] < key[sorted[j-1]]; j-- {
				sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			}
		}
		mid := len(sorted) / 2
		splitVal := key[sorted[mid]]

		myIdx := int32(len(nodes))
		nodes = append(nodes, spatial.RawNode{}) // placeholder
		left := build(sorted[:mid], depth+1)
		right := build(sorted[mid:], depth+1)
		nodes[myIdx] = spatial.RawNode{
			SplitValue: splitVal, SplitAxis: axis,
			Left: left, Right: right,
		}
		return myIdx
	}
	root := build(ids, 0)
	return &spatial.RawIndex{Nodes: nodes, LeafItems: leafItems, RootIndex: uint32(root)}
}

func bruteForce(coordX, coordY []float64, x, y float64) (uint32, float64) {
	bestID := uint32(0)
	bestDist := math.Inf(1)
	for id := range coordX {
		dx := x - coordX[id]
		dy := y - coordY[id]
		d := dx*dx + dy*dy
		if d < bestDist || (d == bestDist && uint32(id) < bestID) {
			bestDist = d
			bestID = uint32(id)
		}
	}
	return bestID, bestDist
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 64
	coordX := make([]float64, n)
	coordY := make([]float64, n)
	ids := make([]uint32, n)
	for i := 0; i < n; i++ {
		coordX[i] = rng.Float64() * 100
		coordY[i] = rng.Float64() * 100
		ids[i] = uint32(i)
	}
	idx := buildBalanced(ids, coordX, coordY)
	tree, err := spatial.NewTree(idx, coordX, coordY, n)
	require.NoError(t, err)

	for q := 0; q < 200; q++ {
		x := rng.Float64() * 100
		y := rng.Float64() * 100
		wantID, wantDist := bruteForce(coordX, coordY, x, y)
		gotID, gotDist, err := tree.Nearest(x, y)
		require.NoError(t, err)
		assert.Equal(t, wantID, gotID)
		assert.InDelta(t, wantDist, gotDist, 1e-9)
	}
}

func TestNearestRejectsNonFinite(t *testing.T) {
	coordX := []float64{0, 1}
	coordY := []float64{0, 1}
	idx := buildBalanced([]uint32{0, 1}, coordX, coordY)
	tree, err := spatial.NewTree(idx, coordX, coordY, 2)
	require.NoError(t, err)

	_, _, err = tree.Nearest(math.NaN(), 0)
	require.ErrorIs(t, err, spatial.ErrNonFiniteQuery)
	_, _, err = tree.Nearest(0, math.Inf(1))
	require.ErrorIs(t, err, spatial.ErrNonFiniteQuery)
}

func TestValidateRejectsSharedChild(t *testing.T) {
	idx := &spatial.RawIndex{
		Nodes: []spatial.RawNode{
			{Left: 1, Right: 1}, // shares child 1 on both sides
			{IsLeaf: true, ItemStart: 0, ItemCount: 1},
		},
		LeafItems: []uint32{0},
		RootIndex: 0,
	}
	err := spatial.Validate(idx, 1)
	require.ErrorIs(t, err, spatial.ErrSharedChild)
}

func TestValidateRejectsOutOfRangeLeafItem(t *testing.T) {
	idx := &spatial.RawIndex{
		Nodes:     []spatial.RawNode{{IsLeaf: true, ItemStart: 0, ItemCount: 1}},
		LeafItems: []uint32{5},
		RootIndex: 0,
	}
	err := spatial.Validate(idx, 2)
	require.ErrorIs(t, err, spatial.ErrLeafItemOutOfBounds)
}
