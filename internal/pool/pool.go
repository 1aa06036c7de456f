// Package pool draws items without replacement until it is reset.
package pool

import (
	"math/rand/v2"
	"time"
)

// IndexSource returns a uniform random index in [0, n). n is always > 0.
type IndexSource interface {
	IntN(n int) int
}

// Pool holds a fixed set of items and hands them out in random order, each
// once per cycle. A Pool is not safe for concurrent use; see Locked.
type Pool[T any] struct {
	all       []T
	remaining []T
	src       IndexSource
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	src IndexSource
}

// WithSource sets the random index source used by Pick.
func WithSource(src IndexSource) Option {
	return func(o *options) { o.src = src }
}

// WithSeed uses a PCG generator seeded with seed, for reproducible draws.
func WithSeed(seed uint64) Option {
	return WithSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New copies items into a fresh pool. The caller's slice is never touched.
func New[T any](items []T, opts ...Option) *Pool[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		now := uint64(time.Now().UnixNano())
		o.src = rand.New(rand.NewPCG(now, now>>1))
	}
	p := &Pool[T]{
		all: append([]T(nil), items...),
		src: o.src,
	}
	p.Reset()
	return p
}

// Pick removes and returns a random remaining item. It returns false, and
// changes nothing, once the pool is exhausted.
func (p *Pool[T]) Pick() (T, bool) {
	var zero T
	n := len(p.remaining)
	if n == 0 {
		return zero, false
	}
	i := p.src.IntN(n)
	item := p.remaining[i]
	p.remaining[i] = p.remaining[n-1]
	p.remaining[n-1] = zero
	p.remaining = p.remaining[:n-1]
	return item, true
}

// Reset makes every item eligible again.
func (p *Pool[T]) Reset() {
	p.remaining = append(make([]T, 0, len(p.all)), p.all...)
}

// Remaining is the number of items not yet drawn this cycle.
func (p *Pool[T]) Remaining() int { return len(p.remaining) }

// Total is the number of items the pool was built with.
func (p *Pool[T]) Total() int { return len(p.all) }

// IsEmpty reports whether every item has been drawn.
func (p *Pool[T]) IsEmpty() bool { return len(p.remaining) == 0 }
