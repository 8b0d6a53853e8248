package planner

import (
	"fmt"
	"math"

	"github.com/taro-engine/taro/model"
)

// Heuristic is the small capability interface for A*'s lower-bound sources
// (spec §4.9, §9 "pluggable over a small capability set {id, validate,
// compute}"). EstimateToTarget must return an admissible (never
// overestimating) lower bound on the remaining cost, in the same seconds
// unit the Cost Engine produces.
type Heuristic interface {
	ID() string
	Validate(store *model.Store) error
	EstimateToTarget(store *model.Store, edge uint32, targetNode uint32) float64
}

// NoneHeuristic always returns zero, reducing A* to Dijkstra.
type NoneHeuristic struct{}

func (NoneHeuristic) ID() string                                                  { return "NONE" }
func (NoneHeuristic) Validate(*model.Store) error                                 { return nil }
func (NoneHeuristic) EstimateToTarget(*model.Store, uint32, uint32) float64 { return 0 }

// EuclideanHeuristic estimates remaining cost as straight-line coordinate
// distance divided by maxSpeed, a caller-supplied upper bound on traversal
// speed (distance units per second) that must never be exceeded by any
// edge's effective speed, or the bound stops being admissible.
type EuclideanHeuristic struct {
	maxSpeed float64
}

// NewEuclideanHeuristic constructs a Euclidean heuristic. maxSpeed must be
// positive; construction panics otherwise, matching the functional-options
// panic-on-invalid-configuration idiom used across this module.
func NewEuclideanHeuristic(maxSpeed float64) *EuclideanHeuristic {
	if maxSpeed <= 0 || math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) {
		panic(fmt.Sprintf("planner: EuclideanHeuristic maxSpeed must be positive, got %v", maxSpeed))
	}
	return &EuclideanHeuristic{maxSpeed: maxSpeed}
}

func (EuclideanHeuristic) ID() string { return "EUCLIDEAN" }

// Validate performs no model-specific check and always returns nil. The
// bound is admissible only if maxSpeed is at least every edge's effective
// speed (coordinate distance per traversal second); model validation does
// not check this, so a maxSpeed that is too small is not rejected here.
func (EuclideanHeuristic) Validate(*model.Store) error { return nil }

func (h EuclideanHeuristic) EstimateToTarget(store *model.Store, edge uint32, targetNode uint32) float64 {
	node := store.EdgeTarget(edge)
	x1, y1 := store.Coordinate(node)
	x2, y2 := store.Coordinate(targetNode)
	dx, dy := x1-x2, y1-y2
	dist := math.Sqrt(dx*dx + dy*dy)
	return dist / h.maxSpeed
}

// ALTHeuristic is the A*+Landmarks+Triangle-inequality admissible bound
// (spec glossary "ALT heuristic"). It requires the model to carry at least
// one precomputed Landmark table.
type ALTHeuristic struct {
	landmarks []model.Landmark
}

// NewALTHeuristic constructs an ALT heuristic over the model's landmark
// set. Returns an error if the model carries none.
func NewALTHeuristic(store *model.Store) (*ALTHeuristic, error) {
	lm := store.Landmarks()
	if len(lm) == 0 {
		return nil, fmt.Errorf("planner: ALT heuristic requires at least one landmark, model has none")
	}
	return &ALTHeuristic{landmarks: lm}, nil
}

func (ALTHeuristic) ID() string { return "ALT" }

// Validate confirms every landmark's distance vectors still match the
// model's current node count, since Landmark.Forward/Backward are dense
// per-node arrays captured at model-build time.
func (h ALTHeuristic) Validate(store *model.Store) error {
	n := int(store.NodeCount())
	for i, lm := range h.landmarks {
		if len(lm.Forward) != n || len(lm.Backward) != n {
			return fmt.Errorf("%w: landmark %d vector length mismatch", ErrNonAdmissibleHeuristic, i)
		}
	}
	return nil
}

// EstimateToTarget computes max_L max(fwd[L][target] - fwd[L][v], bwd[L][v]
// - bwd[L][target]), the standard directed-graph ALT lower bound, clipped
// at zero to guard against floating-point landmark-table rounding that
// could otherwise make the bound slightly negative.
func (h ALTHeuristic) EstimateToTarget(store *model.Store, edge uint32, targetNode uint32) float64 {
	v := store.EdgeTarget(edge)
	best := 0.0
	for _, lm := range h.landmarks {
		viaForward := float64(lm.Forward[targetNode]) - float64(lm.Forward[v])
		viaBackward := float64(lm.Backward[v]) - float64(lm.Backward[targetNode])
		if viaForward > best {
			best = viaForward
		}
		if viaBackward > best {
			best = viaBackward
		}
	}
	return best
}
