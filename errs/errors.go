package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Call sites wrap these with %w and structured context;
// never compare by string, always errors.Is/errors.As.
var (
	// ErrModelContract is the root sentinel for all model-validation failures
	// (spec §4.3, §7 ModelContractError). Model loading fails closed: any
	// violation discards the whole model, never a partial construction.
	ErrModelContract = errors.New("taro: model contract violation")

	// ErrInvalidInput is the root sentinel for caller-supplied bad values:
	// out-of-range ids, non-finite coordinates, negative TTLs, malformed
	// addresses (spec §7 InvalidInputError).
	ErrInvalidInput = errors.New("taro: invalid input")

	// ErrCapability marks a disabled subsystem, e.g. spatial queries when the
	// model carries no spatial index (spec §7 CapabilityError).
	ErrCapability = errors.New("taro: capability disabled")

	// ErrBudgetExceeded is the root sentinel for every budget-overflow reason
	// code in spec §4.9 (spec §7 BudgetExceededError).
	ErrBudgetExceeded = errors.New("taro: search budget exceeded")

	// ErrPoolExhausted marks depletion of the pooled search-state arena after
	// leaked (extracted, never recycled) states (spec §7 PoolExhaustedError).
	ErrPoolExhausted = errors.New("taro: search state pool exhausted")

	// ErrUnreachable marks a planner terminating without reaching its target;
	// a categorized result, not a system failure (spec §7 UnreachableError).
	ErrUnreachable = errors.New("taro: target unreachable")

	// ErrLiveUpdateRejected marks a non-fatal live-overlay ingest rejection;
	// the overlay remains usable afterward (spec §7 LiveUpdateRejectedError).
	ErrLiveUpdateRejected = errors.New("taro: live update rejected")
)

// BudgetReason is a deterministic reason code for BudgetExceededError,
// enumerated in spec §4.9.
type BudgetReason string

const (
	ReasonRowWorkExceeded      BudgetReason = "ROW_WORK_EXCEEDED"
	ReasonRowLabelExceeded     BudgetReason = "ROW_LABEL_EXCEEDED"
	ReasonRowFrontierExceeded  BudgetReason = "ROW_FRONTIER_EXCEEDED"
	ReasonRequestWorkExceeded  BudgetReason = "REQUEST_WORK_EXCEEDED"
	ReasonSettledExceeded      BudgetReason = "SETTLED_EXCEEDED"
)

// ModelContractError reports a categorized model-load failure. Field is the
// dotted path of the offending table/column (e.g. "topology.first_edge"),
// empty when the violation is whole-buffer (e.g. bad schema_version).
type ModelContractError struct {
	Field string
	Err   error // wrapped ErrModelContract or a more specific sentinel
}

func (e *ModelContractError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("model contract: %v", e.Err)
	}
	return fmt.Sprintf("model contract: %s: %v", e.Field, e.Err)
}

func (e *ModelContractError) Unwrap() error { return e.Err }

// ReasonCode returns the dotted field path, or "model" when whole-buffer.
func (e *ModelContractError) ReasonCode() string {
	if e.Field == "" {
		return "model"
	}
	return e.Field
}

// NewModelContractError wraps err (expected to be, or wrap, ErrModelContract)
// with the dotted field path that failed validation.
func NewModelContractError(field string, err error) *ModelContractError {
	return &ModelContractError{Field: field, Err: err}
}

// InvalidInputError reports a single bad caller-supplied value.
type InvalidInputError struct {
	Param string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %v", e.Param, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func (e *InvalidInputError) ReasonCode() string { return e.Param }

// NewInvalidInputError wraps err (expected to be, or wrap, ErrInvalidInput).
func NewInvalidInputError(param string, err error) *InvalidInputError {
	return &InvalidInputError{Param: param, Err: err}
}

// CapabilityError reports a disabled subsystem invoked anyway.
type CapabilityError struct {
	Capability string
	Err        error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability disabled: %s: %v", e.Capability, e.Err)
}

func (e *CapabilityError) Unwrap() error { return e.Err }

func (e *CapabilityError) ReasonCode() string { return e.Capability }

// NewCapabilityError wraps ErrCapability with the disabled capability's name.
func NewCapabilityError(capability string) *CapabilityError {
	return &CapabilityError{Capability: capability, Err: ErrCapability}
}

// BudgetExceededError reports which budget dimension was exhausted and the
// values observed at the time of the violation.
type BudgetExceededError struct {
	Reason   BudgetReason
	Observed int64
	Limit    int64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget exceeded: %s (observed=%d limit=%d)", e.Reason, e.Observed, e.Limit)
}

func (e *BudgetExceededError) Unwrap() error { return ErrBudgetExceeded }

func (e *BudgetExceededError) ReasonCode() string { return string(e.Reason) }

// NewBudgetExceededError constructs a BudgetExceededError for the given
// reason code and the observed/limit pair that triggered it.
func NewBudgetExceededError(reason BudgetReason, observed, limit int64) *BudgetExceededError {
	return &BudgetExceededError{Reason: reason, Observed: observed, Limit: limit}
}

// PoolExhaustedError reports search-state pool depletion, including the
// configured capacity at the time of failure.
type PoolExhaustedError struct {
	Capacity int
}

func (e *PoolExhaustedError) Error() string {
	return fmt.Sprintf("search state pool exhausted: capacity=%d", e.Capacity)
}

func (e *PoolExhaustedError) Unwrap() error { return ErrPoolExhausted }

func (e *PoolExhaustedError) ReasonCode() string { return "POOL_EXHAUSTED" }

// NewPoolExhaustedError constructs a PoolExhaustedError for the given pool capacity.
func NewPoolExhaustedError(capacity int) *PoolExhaustedError {
	return &PoolExhaustedError{Capacity: capacity}
}

// UnreachableError reports that a planner terminated without reaching its
// target. It is a categorized result, never a process failure.
type UnreachableError struct {
	Source string
	Target string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("unreachable: %s -> %s", e.Source, e.Target)
}

func (e *UnreachableError) Unwrap() error { return ErrUnreachable }

func (e *UnreachableError) ReasonCode() string { return "UNREACHABLE" }

// NewUnreachableError constructs an UnreachableError for the given source/target pair.
func NewUnreachableError(source, target string) *UnreachableError {
	return &UnreachableError{Source: source, Target: target}
}

// LiveUpdateRejectedError carries a per-batch rejection summary. It is
// non-fatal: the overlay remains usable after this error is returned.
type LiveUpdateRejectedError struct {
	RejectedExpired  int
	RejectedCapacity int
}

func (e *LiveUpdateRejectedError) Error() string {
	return fmt.Sprintf("live update rejected: expired=%d capacity=%d", e.RejectedExpired, e.RejectedCapacity)
}

func (e *LiveUpdateRejectedError) Unwrap() error { return ErrLiveUpdateRejected }

func (e *LiveUpdateRejectedError) ReasonCode() string { return "LIVE_UPDATE_REJECTED" }

// NewLiveUpdateRejectedError constructs a LiveUpdateRejectedError summarizing
// a batch ingest's rejections.
func NewLiveUpdateRejectedError(rejectedExpired, rejectedCapacity int) *LiveUpdateRejectedError {
	return &LiveUpdateRejectedError{RejectedExpired: rejectedExpired, RejectedCapacity: rejectedCapacity}
}
