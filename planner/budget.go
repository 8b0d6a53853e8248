package planner

import (
	"math"

	"github.com/taro-engine/taro/errs"
)

// Budget bounds a search's work, independently per row (one planner.Route or
// one source-row of a Matrix sweep) and across the whole request (spec
// §4.9 "Budgets"). A zero field means "unlimited" for that dimension.
type Budget struct {
	RowWorkLimit     int64
	RowLabelLimit    int64
	RowFrontierLimit int64
	RequestWorkLimit int64
	SettledLimit     int64
}

// DefaultBudget returns an effectively unbounded budget: no limit applies
// unless a caller configures one.
func DefaultBudget() Budget {
	return Budget{
		RowWorkLimit:     math.MaxInt64,
		RowLabelLimit:    math.MaxInt64,
		RowFrontierLimit: math.MaxInt64,
		RequestWorkLimit: math.MaxInt64,
		SettledLimit:     math.MaxInt64,
	}
}

// tracker accumulates request-level counters shared across every row of a
// single facade request (e.g. every source of a many-to-many matrix), plus
// the current row's own counters, reset by startRow.
type tracker struct {
	budget Budget

	requestWork    int64
	requestSettled int64

	rowWork   int64
	rowLabels int64
}

func newTracker(budget Budget) *tracker {
	return &tracker{budget: budget}
}

func (t *tracker) startRow() {
	t.rowWork = 0
	t.rowLabels = 0
}

// chargeWork records one extract_min and returns a BudgetExceededError if
// either the row or request work limit is now exceeded.
func (t *tracker) chargeWork() error {
	t.rowWork++
	t.requestWork++
	if t.budget.RowWorkLimit > 0 && t.rowWork > t.budget.RowWorkLimit {
		return errs.NewBudgetExceededError(errs.ReasonRowWorkExceeded, t.rowWork, t.budget.RowWorkLimit)
	}
	if t.budget.RequestWorkLimit > 0 && t.requestWork > t.budget.RequestWorkLimit {
		return errs.NewBudgetExceededError(errs.ReasonRequestWorkExceeded, t.requestWork, t.budget.RequestWorkLimit)
	}
	return nil
}

// chargeSettled records one newly-finalized (first-visit) state.
func (t *tracker) chargeSettled() error {
	t.requestSettled++
	if t.budget.SettledLimit > 0 && t.requestSettled > t.budget.SettledLimit {
		return errs.NewBudgetExceededError(errs.ReasonSettledExceeded, t.requestSettled, t.budget.SettledLimit)
	}
	return nil
}

// chargeLabel records one insert/decrease-key attempt against the row label
// budget.
func (t *tracker) chargeLabel() error {
	t.rowLabels++
	if t.budget.RowLabelLimit > 0 && t.rowLabels > t.budget.RowLabelLimit {
		return errs.NewBudgetExceededError(errs.ReasonRowLabelExceeded, t.rowLabels, t.budget.RowLabelLimit)
	}
	return nil
}

// checkFrontier validates the current queue size against the row frontier
// budget.
func (t *tracker) checkFrontier(size int) error {
	if t.budget.RowFrontierLimit > 0 && int64(size) > t.budget.RowFrontierLimit {
		return errs.NewBudgetExceededError(errs.ReasonRowFrontierExceeded, int64(size), t.budget.RowFrontierLimit)
	}
	return nil
}
