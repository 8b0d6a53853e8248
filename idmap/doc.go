// Package idmap implements TARO's ID Mapper (spec §4.2): a bidirectional,
// read-only map between external node identifiers (strings; package model
// builds a Mapper from the binary model's optional IdMapping table, spec §6,
// by formatting each u64 external id as a decimal string) and the dense
// internal node ids assigned at model build time.
//
// A Mapper is constructed once from a complete external-id slice indexed by
// internal id, validated for bijectivity, and is then safe for concurrent
// read-only use for the process lifetime: validate once at construction,
// read-only thereafter.
package idmap
