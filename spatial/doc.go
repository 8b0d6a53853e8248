// Package spatial implements TARO's Spatial Runtime (spec §4.4): an
// implicit KD-tree over node coordinates supporting nearest-neighbor lookup
// by iterative, stack-based traversal.
//
// A Tree is built once from the model's validated spatial-index table and
// node coordinates, and is then immutable and safe for concurrent reads.
// When a model carries no spatial index, no Tree is built and callers must
// treat spatial lookups as a disabled capability (spec §4.4).
package spatial
