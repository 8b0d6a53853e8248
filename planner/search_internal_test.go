package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/errs"
	"github.com/taro-engine/taro/queue"
)

func TestWrapPoolExhaustedBridgesQueueSentinel(t *testing.T) {
	err := wrapPoolExhausted(queue.ErrPoolExhausted, 16)
	require.ErrorIs(t, err, errs.ErrPoolExhausted)
	var poolErr *errs.PoolExhaustedError
	require.ErrorAs(t, err, &poolErr)
	assert.Equal(t, 16, poolErr.Capacity)
}

func TestWrapPoolExhaustedPassesThroughOtherErrors(t *testing.T) {
	other := errors.New("unrelated")
	err := wrapPoolExhausted(other, 16)
	assert.Same(t, other, err)
	assert.False(t, errors.Is(err, errs.ErrPoolExhausted))
}
