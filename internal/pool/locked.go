package pool

import "sync"

// Locked serializes access to a Pool so several request handlers can share it.
// It also remembers what was drawn since the last reset.
type Locked[T any] struct {
	mu    sync.Mutex
	pool  *Pool[T]
	drawn []T
}

// Snapshot is a consistent view of a pool's counters.
type Snapshot struct {
	Remaining int  `json:"remaining"`
	Total     int  `json:"total"`
	IsEmpty   bool `json:"isEmpty"`
}

// NewLocked wraps a new Pool built from items.
func NewLocked[T any](items []T, opts ...Option) *Locked[T] {
	return &Locked[T]{pool: New(items, opts...)}
}

// Pick draws one item and returns it with the counters after the draw.
func (l *Locked[T]) Pick() (T, Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.pool.Pick()
	if ok {
		l.drawn = append(l.drawn, item)
	}
	return item, l.snapshot(), ok
}

// Reset restores the full pool and forgets the draw history.
func (l *Locked[T]) Reset() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pool.Reset()
	l.drawn = nil
	return l.snapshot()
}

// Status returns the current counters.
func (l *Locked[T]) Status() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Drawn returns the items picked since the last reset, oldest first.
func (l *Locked[T]) Drawn() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.drawn...)
}

// DrawnStatus returns the draw history and counters from the same instant.
func (l *Locked[T]) DrawnStatus() ([]T, Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.drawn...), l.snapshot()
}

func (l *Locked[T]) snapshot() Snapshot {
	return Snapshot{
		Remaining: l.pool.Remaining(),
		Total:     l.pool.Total(),
		IsEmpty:   l.pool.IsEmpty(),
	}
}
