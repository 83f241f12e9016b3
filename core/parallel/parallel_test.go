package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelizeCoversEveryIndex(t *testing.T) {
	for _, n := range []int{1, 2, 7, 1000, 10007} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			seen := make([]int32, n)
			Parallelize(n, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})
			for i, c := range seen {
				require.Equal(t, int32(1), c, "index %d", i)
			}
		})
	}
}

func TestParallelizeEmpty(t *testing.T) {
	called := false
	Parallelize(0, func(int, int) { called = true })
	ParallelizeWithThreshold(0, 10, func(int, int) { called = true })
	assert.False(t, called)
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	var calls int
	ParallelizeWithThreshold(100, 100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	})
	assert.Equal(t, 1, calls)
}

func TestParallelizeErrReturnsLowestRange(t *testing.T) {
	n := 50000
	err := ParallelizeErr(n, 0, func(start, end int) error {
		if end == n {
			return fmt.Errorf("last range")
		}
		if start == 0 {
			return fmt.Errorf("first range")
		}
		return nil
	})
	require.Error(t, err)
	if Workers(n) > 1 {
		assert.EqualError(t, err, "first range")
	}

	assert.NoError(t, ParallelizeErr(n, 0, func(int, int) error { return nil }))
	assert.NoError(t, ParallelizeErr(0, 0, func(int, int) error { return fmt.Errorf("never") }))
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 1, Workers(0))
	assert.Equal(t, 1, Workers(1))
	assert.LessOrEqual(t, Workers(1<<20), 1<<20)
}
