package testutil

import (
	"math/rand"
	"sync/atomic"
)

// DeterministicNoise generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns start, start+step, ... with the given length.
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Counter wraps a scalar function and counts its invocations.
// It is safe for concurrent use.
type Counter struct {
	fn    func(float64) float64
	calls atomic.Int64
}

// NewCounter returns a Counter around fn.
func NewCounter(fn func(float64) float64) *Counter {
	return &Counter{fn: fn}
}

// Func returns the counting wrapper.
func (c *Counter) Func() func(float64) float64 {
	return func(x float64) float64 {
		c.calls.Add(1)
		return c.fn(x)
	}
}

// Calls returns the number of invocations so far.
func (c *Counter) Calls() int64 {
	return c.calls.Load()
}

// Reset sets the invocation count back to zero.
func (c *Counter) Reset() {
	c.calls.Store(0)
}
