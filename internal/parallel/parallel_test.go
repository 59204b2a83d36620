package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_Sequential(t *testing.T) {
	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, Sequential())

	assert.Equal(t, int64(100), counter)
}

func TestForRange_CoversEveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 3}

	for _, n := range []int{1, 5, 6, 7, 23, 64, 1001} {
		seen := make([]int32, n)
		ForRange(n, func(start, end int) {
			assert.LessOrEqual(t, start, end)
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		}, cfg)
		for i, c := range seen {
			assert.Equal(t, int32(1), c, "n=%d index %d", n, i)
		}
	}
}

func TestForRange_SmallInputRunsInline(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	var mu sync.Mutex
	var calls [][2]int
	ForRange(100, func(start, end int) {
		mu.Lock()
		calls = append(calls, [2]int{start, end})
		mu.Unlock()
	}, cfg)

	assert.Equal(t, [][2]int{{0, 100}}, calls)
}

func TestForRange_Empty(t *testing.T) {
	called := false
	ForRange(0, func(_, _ int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, Sequential())
		}
	})
}
