package buffer

import "sync"

// Pool hands out zeroed scratch slices to reduce GC pressure in block loops.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				s := make([]float64, 0)
				return &s
			},
		},
	}
}

// Get returns a zeroed slice of the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *[]float64 {
	if length < 0 {
		length = 0
	}
	sp := p.pool.Get().(*[]float64)
	s := *sp
	if cap(s) < length {
		s = make([]float64, length)
	} else {
		s = s[:length]
		clear(s)
	}
	*sp = s
	return sp
}

// Put returns a slice to the pool for reuse.
// The caller must not use the slice after calling Put.
func (p *Pool) Put(sp *[]float64) {
	if sp == nil {
		return
	}
	p.pool.Put(sp)
}
