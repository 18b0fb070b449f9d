package throttle_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/squarewave-background/internal/throttle"
)

func TestLatest_EmptyTake(t *testing.T) {
	var l throttle.Latest[float64]
	_, ok := l.Take()
	assert.False(t, ok)
}

func TestLatest_Coalesces(t *testing.T) {
	var l throttle.Latest[float64]
	assert.True(t, l.Post(10), "first post schedules")
	assert.False(t, l.Post(20), "second post rides along")
	assert.False(t, l.Post(30))

	v, ok := l.Take()
	require.True(t, ok)
	assert.Equal(t, 30.0, v, "only the latest value survives")

	_, ok = l.Take()
	assert.False(t, ok, "one take per burst")

	assert.True(t, l.Post(40), "next burst schedules again")
}

func TestLatest_ConcurrentPosts(t *testing.T) {
	var l throttle.Latest[int]
	var wg sync.WaitGroup
	var scheduled sync.Map
	for i := 1; i <= 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if l.Post(i) {
				scheduled.Store(i, true)
			}
		}(i)
	}
	wg.Wait()

	n := 0
	scheduled.Range(func(_, _ any) bool { n++; return true })
	assert.Equal(t, 1, n, "exactly one post wins the pending flag")

	v, ok := l.Take()
	require.True(t, ok)
	assert.GreaterOrEqual(t, v, 1)
	assert.LessOrEqual(t, v, 64)
}
