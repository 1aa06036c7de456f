package pool

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedConcurrentPicksNeverRepeat(t *testing.T) {
	const n = 200
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	l := NewLocked(items, WithSeed(1))

	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, _, ok := l.Pick()
				if !ok {
					return
				}
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Ints(got)
	assert.Equal(t, items, got)
	assert.True(t, l.Status().IsEmpty)
}

func TestLockedDrawnHistory(t *testing.T) {
	l := NewLocked([]string{"a", "b", "c"}, WithSource(&scripted{indices: []int{2, 0}}))

	first, snap, ok := l.Pick()
	require.True(t, ok)
	assert.Equal(t, "c", first)
	assert.Equal(t, Snapshot{Remaining: 2, Total: 3}, snap)

	second, _, ok := l.Pick()
	require.True(t, ok)
	assert.Equal(t, []string{first, second}, l.Drawn())

	history, snap := l.DrawnStatus()
	assert.Equal(t, []string{first, second}, history)
	assert.Equal(t, Snapshot{Remaining: 1, Total: 3}, snap)

	snap = l.Reset()
	assert.Equal(t, Snapshot{Remaining: 3, Total: 3}, snap)
	assert.Empty(t, l.Drawn())

	history, snap = l.DrawnStatus()
	assert.Empty(t, history)
	assert.Equal(t, 3, snap.Remaining)
}
