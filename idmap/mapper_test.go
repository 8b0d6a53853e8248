package idmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/idmap"
)

func TestMapperRoundTrip(t *testing.T) {
	m, err := idmap.New([]string{"n0", "n1", "n2"})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	id, err := m.ToInternal("n1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	ext, err := m.ToExternal(2)
	require.NoError(t, err)
	assert.Equal(t, "n2", ext)
}

func TestMapperNotFound(t *testing.T) {
	m, err := idmap.New([]string{"a", "b"})
	require.NoError(t, err)

	_, err = m.ToInternal("missing")
	require.ErrorIs(t, err, idmap.ErrNotFound)

	_, err = m.ToExternal(5)
	require.ErrorIs(t, err, idmap.ErrNotFound)
}

func TestMapperRejectsDuplicateExternalID(t *testing.T) {
	_, err := idmap.New([]string{"a", "b", "a"})
	require.ErrorIs(t, err, idmap.ErrDuplicateExternalID)
}
