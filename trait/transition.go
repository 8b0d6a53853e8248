package trait

import (
	"github.com/taro-engine/taro/cost"
	"github.com/taro-engine/taro/errs"
	"github.com/taro-engine/taro/model"
)

// Transition is the transition-model capability: whether the Cost Engine
// folds turn-cost penalties into a relaxation (spec §2, §9 "transition
// (edge-/node-based)").
type Transition interface {
	ID() string
	Validate(store *model.Store) error
	Option() cost.Option
}

// EdgeBasedTransition applies turn-cost penalties between consecutive
// edges, the default and the only mode spec §4.7/§4.9 describes in full:
// the planner expands edges rather than nodes precisely so that a turn
// penalty between two specific edges can be charged.
type EdgeBasedTransition struct{}

func (EdgeBasedTransition) ID() string                 { return "EDGE_BASED" }
func (EdgeBasedTransition) Validate(*model.Store) error { return nil }
func (EdgeBasedTransition) Option() cost.Option        { return cost.WithEdgeBasedTransitions() }

// NodeBasedTransition disables turn-cost lookups: every relaxation is
// penalty-free regardless of the incoming edge. Requires the model to
// carry an empty turn-cost table.
type NodeBasedTransition struct{}

func (NodeBasedTransition) ID() string { return "NODE_BASED" }

func (NodeBasedTransition) Validate(store *model.Store) error {
	if store.TurnCostCount() > 0 {
		return errs.NewCapabilityError("node_based_transition: model has a non-empty turn-cost table")
	}
	return nil
}

func (NodeBasedTransition) Option() cost.Option { return cost.WithNodeBasedTransitions() }
