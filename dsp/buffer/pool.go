package buffer

import "sync"

// Pool provides sync.Pool-based Pair reuse to reduce GC pressure in
// per-frame processing loops.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Pair{}
			},
		},
	}
}

// Get returns a Pair with the requested length. Both halves are zeroed.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Pair {
	pair := p.pool.Get().(*Pair)
	pair.Resize(length)
	pair.Zero()
	return pair
}

// Put returns a Pair to the pool for reuse.
// The caller must not use the pair after calling Put.
func (p *Pool) Put(pair *Pair) {
	if pair == nil {
		return
	}
	p.pool.Put(pair)
}
