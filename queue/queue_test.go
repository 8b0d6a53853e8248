package queue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taro-engine/taro/queue"
)

func TestExtractMinOrdersByCostThenTickThenEdge(t *testing.T) {
	q := queue.New(8, 8)
	require.NoError(t, q.Insert(3, 10, 5.0, 0))
	require.NoError(t, q.Insert(1, 5, 5.0, 0))  // same cost, earlier tick wins
	require.NoError(t, q.Insert(2, 5, 1.0, 0))  // lowest cost wins overall
	require.NoError(t, q.Insert(4, 5, 5.0, 0))  // same cost+tick as edge1, higher edge id

	st, err := q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), st.Edge)
	q.Recycle(st)

	st, err = q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), st.Edge)
	q.Recycle(st)

	st, err = q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, uint32(4), st.Edge)
	q.Recycle(st)

	st, err = q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), st.Edge)
	q.Recycle(st)

	assert.Equal(t, 0, q.Len())
}

func TestInsertDecreaseKeyOnlyWhenStrictlyBetter(t *testing.T) {
	q := queue.New(4, 4)
	require.NoError(t, q.Insert(0, 100, 10.0, 99))
	require.NoError(t, q.Insert(0, 50, 20.0, 1)) // worse, must be ignored
	require.NoError(t, q.Insert(0, 10, 5.0, 2))  // strictly better, must apply

	st, err := q.ExtractMin()
	require.NoError(t, err)
	assert.EqualValues(t, 5.0, st.Cost)
	assert.EqualValues(t, 10, st.ArrivalTick)
	assert.EqualValues(t, 2, st.Pred)
}

func TestExtractMinOnEmptyFails(t *testing.T) {
	q := queue.New(2, 2)
	_, err := q.ExtractMin()
	require.ErrorIs(t, err, queue.ErrEmptyQueue)
}

func TestInsertRejectsOutOfRangeEdge(t *testing.T) {
	q := queue.New(2, 2)
	err := q.Insert(5, 0, 0, 0)
	require.ErrorIs(t, err, queue.ErrEdgeOutOfRange)
}

func TestPoolExhaustionIsHardFailure(t *testing.T) {
	q := queue.New(4, 2)
	require.NoError(t, q.Insert(0, 0, 1, 0))
	require.NoError(t, q.Insert(1, 0, 1, 0))
	err := q.Insert(2, 0, 1, 0)
	require.ErrorIs(t, err, queue.ErrPoolExhausted)
}

func TestClearRecoversPoolAfterLeaks(t *testing.T) {
	q := queue.New(4, 2)
	require.NoError(t, q.Insert(0, 0, 1, 0))
	st, err := q.ExtractMin()
	require.NoError(t, err)
	_ = st // leaked: never recycled

	require.NoError(t, q.Insert(1, 0, 1, 0))
	err = q.Insert(2, 0, 1, 0)
	require.ErrorIs(t, err, queue.ErrPoolExhausted)

	q.Clear()
	require.NoError(t, q.Insert(3, 0, 1, 0))
	assert.Equal(t, 1, q.Len())
}

func TestHeapOrderMatchesSortedInsertionUnderRandomLoad(t *testing.T) {
	const n = 200
	q := queue.New(n, n)
	rng := rand.New(rand.NewSource(42))
	costs := make([]float64, n)
	for i := 0; i < n; i++ {
		costs[i] = rng.Float64() * 1000
		require.NoError(t, q.Insert(uint32(i), 0, costs[i], 0))
	}

	var prev float64 = -1
	for q.Len() > 0 {
		st, err := q.ExtractMin()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, st.Cost, prev)
		prev = st.Cost
		require.NoError(t, q.Recycle(st))
	}
}

func TestVisitedSetMarksOnceAndClears(t *testing.T) {
	v := queue.NewVisitedSet(10)
	assert.True(t, v.MarkVisited(3))
	assert.False(t, v.MarkVisited(3))
	assert.True(t, v.IsVisited(3))
	assert.False(t, v.IsVisited(4))

	v.Clear()
	assert.False(t, v.IsVisited(3))
	assert.True(t, v.MarkVisited(3))
}

func TestVisitedSetOutOfRangeIsSafe(t *testing.T) {
	v := queue.NewVisitedSet(4)
	assert.False(t, v.MarkVisited(100))
	assert.False(t, v.IsVisited(100))
}
