// Package errs defines the closed set of error kinds shared across the TARO
// runtime (spec §7): ModelContractError, InvalidInputError, CapabilityError,
// BudgetExceededError, PoolExhaustedError, UnreachableError, and
// LiveUpdateRejectedError.
//
// Every kind is a typed struct wrapping a package-level sentinel so callers
// can branch with errors.Is/errors.As without string comparison: sentinels
// are never built with formatted strings, and call sites attach context via
// %w wrapping.
package errs
