// Package model implements TARO's Model Store (spec §4.3): it decodes the
// self-describing binary model buffer (spec §6) exactly once, validates it
// fail-closed against every invariant in spec §3/§4.3, and exposes a
// read-only, concurrency-safe view over the CSR topology, turn costs,
// temporal-profile references, spatial index, landmarks, and id mapping.
//
// Validation never constructs a partial Store: any violation returns a
// *errs.ModelContractError and discards all decoded state. The Store is
// validated once, then read-only for the process lifetime: TARO never
// mutates topology after load (spec §1: model building is an external
// collaborator).
package model
