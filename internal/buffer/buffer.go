package buffer

import "sync/atomic"

// Buffer wraps a float64 slice with an atomic share count.
type Buffer struct {
	samples []float64
	shares  atomic.Int32
}

// New returns an empty Buffer with at least the given capacity.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	b := &Buffer{samples: make([]float64, 0, capacity)}
	b.shares.Store(1)
	return b
}

// FromSlice copies s into a new Buffer.
func FromSlice(s []float64) *Buffer {
	b := New(len(s))
	b.samples = append(b.samples, s...)
	return b
}

// Samples returns the underlying slice. It is never nil for a live buffer.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Buffer) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]float64, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Reserve returns a buffer the caller may mutate with capacity at least n.
// A shared b is copied once, straight into the larger capacity, and the
// caller's hold on it is dropped. An unshared b is grown in place.
func (b *Buffer) Reserve(n int) *Buffer {
	if !b.Shared() {
		b.Grow(n)
		return b
	}
	c := New(max(n, cap(b.samples)))
	c.samples = append(c.samples, b.samples...)
	b.Release()
	return c
}

// Append adds x to the end of the buffer. Amortized O(1).
func (b *Buffer) Append(x float64) {
	b.samples = append(b.samples, x)
}

// Copy returns an unshared deep copy of the buffer with the same capacity.
func (b *Buffer) Copy() *Buffer {
	c := New(cap(b.samples))
	c.samples = append(c.samples, b.samples...)
	return c
}

// Share registers one more holder and returns b.
func (b *Buffer) Share() *Buffer {
	b.shares.Add(1)
	return b
}

// Shared reports whether more than one holder references b.
func (b *Buffer) Shared() bool {
	return b.shares.Load() > 1
}

// Unique returns a buffer the caller may mutate in place. If b is shared the
// caller's hold on b is dropped and a private copy is returned.
func (b *Buffer) Unique() *Buffer {
	if !b.Shared() {
		return b
	}
	c := b.Copy()
	b.Release()
	return c
}

// Release drops one holder. The storage is dropped with the last one and the
// return value reports whether that happened.
func (b *Buffer) Release() bool {
	if b.shares.Add(-1) != 0 {
		return false
	}
	b.samples = nil
	return true
}
