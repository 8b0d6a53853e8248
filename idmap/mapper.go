package idmap

import "fmt"

// Mapper is a bidirectional, read-only map between external node ids and
// dense internal node ids in [0, N). Construction validates bijectivity;
// lookups are O(1) expected (spec §4.2).
type Mapper struct {
	externalByInternal []string
	internalByExternal map[string]uint32
}

// New builds a Mapper from externalByInternal, where externalByInternal[i]
// is the external id of internal node i. Returns ErrDuplicateExternalID if
// any external id repeats.
func New(externalByInternal []string) (*Mapper, error) {
	index := make(map[string]uint32, len(externalByInternal))
	for i, ext := range externalByInternal {
		if prev, dup := index[ext]; dup {
			return nil, fmt.Errorf("%w: %q (internal ids %d and %d)", ErrDuplicateExternalID, ext, prev, i)
		}
		index[ext] = uint32(i)
	}
	return &Mapper{
		externalByInternal: append([]string(nil), externalByInternal...),
		internalByExternal: index,
	}, nil
}

// ToInternal resolves an external id to its dense internal node id.
func (m *Mapper) ToInternal(external string) (uint32, error) {
	id, ok := m.internalByExternal[external]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, external)
	}
	return id, nil
}

// ToExternal resolves a dense internal node id to its external id.
func (m *Mapper) ToExternal(internal uint32) (string, error) {
	if int(internal) >= len(m.externalByInternal) {
		return "", fmt.Errorf("%w: internal id %d", ErrNotFound, internal)
	}
	return m.externalByInternal[internal], nil
}

// Len returns the number of mapped nodes.
func (m *Mapper) Len() int { return len(m.externalByInternal) }
