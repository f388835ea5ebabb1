package vector

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cwbudde/algo-altvec/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCountedRamp(n int, finalized *atomic.Int32) *Handle {
	return NewHandle(rampClass, &rampState{start: 0, step: 1, n: n, finalized: finalized})
}

func TestReleaseRunsFinalizerOnce(t *testing.T) {
	var finalized atomic.Int32
	h := newCountedRamp(3, &finalized)

	h.Retain()
	h.Release()
	assert.Zero(t, finalized.Load(), "finalizer ran with a reference outstanding")

	h.Release()
	assert.Equal(t, int32(1), finalized.Load())
}

func TestReleaseTooManyTimesPanics(t *testing.T) {
	h := Borrow([]float64{1})
	h.Release()
	assert.Panics(t, func() { h.Release() })
}

func TestRetainAfterReleasePanics(t *testing.T) {
	h := Borrow([]float64{1})
	h.Release()
	assert.Panics(t, func() { h.Retain() })
}

func TestLazyReleasesItsSource(t *testing.T) {
	var finalized atomic.Int32
	src := newCountedRamp(4, &finalized)

	v := NewLazy(src, transform.Abs)
	src.Release()
	assert.Zero(t, finalized.Load(), "view must keep its source alive")
	assert.Equal(t, 3.0, v.At(3))

	v.Release()
	assert.Equal(t, int32(1), finalized.Load())
}

func TestOwnedFinalizeDropsStorage(t *testing.T) {
	v := OwnedFrom([]float64{1, 2, 3})
	st := v.owned()
	v.Release()
	assert.Nil(t, st.buf.Samples())
}

//go:noinline
func dropCountedRamp(finalized *atomic.Int32) {
	h := newCountedRamp(8, finalized)
	_ = h.Len()
}

func TestCleanupRunsWhenUnreachable(t *testing.T) {
	var finalized atomic.Int32
	dropCountedRamp(&finalized)

	deadline := time.Now().Add(5 * time.Second)
	for finalized.Load() == 0 && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, int32(1), finalized.Load(), "GC cleanup should finalize an unreleased handle")
}

func TestStringMatchesDescribe(t *testing.T) {
	h := Borrow([]float64{1, 2})
	assert.Equal(t, h.Describe(), h.String())
}
