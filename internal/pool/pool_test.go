package pool

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns the queued indices in order, then falls back to 0.
type scripted struct {
	indices []int
	calls   []int
}

func (s *scripted) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.indices) == 0 {
		return 0
	}
	i := s.indices[0]
	s.indices = s.indices[1:]
	return i
}

type item struct{ id int }

func drain[T any](p *Pool[T]) []T {
	var out []T
	for !p.IsEmpty() {
		v, ok := p.Pick()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestPickReducesRemaining(t *testing.T) {
	p := New([]item{{1}, {2}, {3}})
	assert.Equal(t, 3, p.Total())
	assert.Equal(t, 3, p.Remaining())

	_, ok := p.Pick()
	require.True(t, ok)
	assert.Equal(t, 2, p.Remaining())
	assert.Equal(t, 3, p.Total())
}

func TestPickExhausted(t *testing.T) {
	p := New([]string{"a"})
	_, ok := p.Pick()
	require.True(t, ok)
	assert.True(t, p.IsEmpty())

	v, ok := p.Pick()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, 0, p.Remaining())
}

func TestEmptyPool(t *testing.T) {
	p := New[item](nil)
	assert.Equal(t, 0, p.Total())
	assert.True(t, p.IsEmpty())
	_, ok := p.Pick()
	assert.False(t, ok)
}

func TestEveryItemExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 40} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		p := New(items, WithSeed(uint64(n)+7))

		got := drain(p)
		sort.Ints(got)
		assert.Equal(t, items, append([]int{}, got...), "n=%d", n)

		_, ok := p.Pick()
		assert.False(t, ok, "n=%d: draw after exhaustion", n)
		assert.Equal(t, n, p.Total())
	}
}

func TestDuplicateValuesAreIndependentDraws(t *testing.T) {
	p := New([]string{"same", "same", "other"})
	got := drain(p)
	sort.Strings(got)
	assert.Equal(t, []string{"other", "same", "same"}, got)
}

func TestResetStartsNewCycle(t *testing.T) {
	p := New([]string{"a", "b"})
	drain(p)
	require.True(t, p.IsEmpty())

	p.Reset()
	assert.Equal(t, 2, p.Remaining())
	assert.False(t, p.IsEmpty())

	got := drain(p)
	sort.Strings(got)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMultipleResets(t *testing.T) {
	p := New([]string{"x"})
	p.Pick()
	p.Reset()
	p.Pick()
	p.Reset()
	assert.Equal(t, 1, p.Remaining())

	v, ok := p.Pick()
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, 1, p.Total())
}

func TestDoesNotShareCallerSlice(t *testing.T) {
	items := []string{"a", "b"}
	p := New(items)
	p.Pick()
	p.Pick()
	assert.Len(t, items, 2)
	assert.Equal(t, []string{"a", "b"}, items)

	items[0] = "changed"
	p.Reset()
	got := drain(p)
	assert.NotContains(t, got, "changed")
}

func TestScriptedSourceDrawSequence(t *testing.T) {
	src := &scripted{indices: []int{1, 0, 1, 0}}
	p := New([]string{"a", "b", "c", "d"}, WithSource(src))

	var got []string
	for {
		v, ok := p.Pick()
		if !ok {
			break
		}
		got = append(got, v)
	}

	// index 1 of [a b c d] -> b, leaves [a d c]
	// index 0 of [a d c]   -> a, leaves [c d]
	// index 1 of [c d]     -> d, leaves [c]
	assert.Equal(t, []string{"b", "a", "d", "c"}, got)
	assert.Equal(t, []int{4, 3, 2, 1}, src.calls)
}

func TestSeededPoolsAgree(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := drain(New(items, WithSeed(42)))
	b := drain(New(items, WithSeed(42)))
	assert.Equal(t, a, b)
}
