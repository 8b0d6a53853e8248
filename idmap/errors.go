package idmap

import "errors"

var (
	// ErrDuplicateExternalID indicates the provided external-id slice maps
	// two distinct internal ids to the same external id, violating
	// bijectivity (spec §4.2: "validates bijectivity (no duplicate internal
	// ids)" — duplication is symmetric: a repeated external id would make
	// ToInternal ambiguous).
	ErrDuplicateExternalID = errors.New("idmap: duplicate external id")

	// ErrNotFound indicates a lookup for an id absent from the mapper.
	ErrNotFound = errors.New("idmap: id not found")
)
