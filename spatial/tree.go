package spatial

import (
	"fmt"
	"math"
)

// Tree is a validated, read-only KD-tree over node coordinates (spec §4.4).
type Tree struct {
	nodes     []RawNode
	leafItems []uint32
	root      int32
	coordX    []float64
	coordY    []float64
}

// NewTree validates idx (see Validate) and builds a Tree over coordX/coordY,
// indexed by the same dense node ids as the model's topology.
func NewTree(idx *RawIndex, coordX, coordY []float64, nodeCount uint32) (*Tree, error) {
	if err := Validate(idx, nodeCount); err != nil {
		return nil, err
	}
	return &Tree{
		nodes:     idx.Nodes,
		leafItems: idx.LeafItems,
		root:      int32(idx.RootIndex),
		coordX:    coordX,
		coordY:    coordY,
	}, nil
}

// stackFrame is a pending visit. pruneDistSq/hasPrune implement the "recurse
// into the far side only if the squared distance to the split plane is less
// than the current best" rule (spec §4.4) against the best known at pop
// time, not at push time, since the near subtree may shrink it first.
type stackFrame struct {
	idx         int32
	hasPrune    bool
	pruneDistSq float64
}

// Nearest returns the node id closest to (x, y) and the squared Euclidean
// distance to it, breaking ties in favor of the numerically smaller node id
// (spec §4.4). Rejects non-finite query coordinates.
func (t *Tree) Nearest(x, y float64) (uint32, float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, fmt.Errorf("%w: (%v, %v)", ErrNonFiniteQuery, x, y)
	}

	bestID := uint32(math.MaxUint32)
	bestDistSq := math.Inf(1)

	stack := []stackFrame{{idx: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.hasPrune && f.pruneDistSq >= bestDistSq {
			continue
		}

		node := t.nodes[f.idx]
		if node.IsLeaf {
			for _, id := range t.leafItems[node.ItemStart : node.ItemStart+node.ItemCount] {
				dx := x - t.coordX[id]
				dy := y - t.coordY[id]
				d := dx*dx + dy*dy
				if d < bestDistSq || (d == bestDistSq && id < bestID) {
					bestDistSq = d
					bestID = id
				}
			}
			continue
		}

		qval := x
		if node.SplitAxis == 1 {
			qval = y
		}
		diff := qval - node.SplitValue

		near, far := node.Left, node.Right
		if diff > 0 {
			near, far = node.Right, node.Left
		}
		if near == noChild {
			near, far = far, noChild
		}

		if far != noChild {
			stack = append(stack, stackFrame{idx: far, hasPrune: true, pruneDistSq: diff * diff})
		}
		if near != noChild {
			stack = append(stack, stackFrame{idx: near})
		}
	}

	if bestID == math.MaxUint32 {
		return 0, 0, ErrEmptyTree
	}
	return bestID, bestDistSq, nil
}

// NearestNodeID is Nearest without the distance, for callers that only need
// the resolved node id (spec §4.4).
func (t *Tree) NearestNodeID(x, y float64) (uint32, error) {
	id, _, err := t.Nearest(x, y)
	return id, err
}
