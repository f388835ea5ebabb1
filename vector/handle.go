package vector

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Handle is a reference to one vector. Its class is resolved when the
// handle is created; every call dispatches straight through the class table.
type Handle struct {
	class   *Class
	state   any
	refs    atomic.Int32
	life    *lifecycle
	cleanup runtime.Cleanup
}

// lifecycle is kept apart from Handle so the GC cleanup can reach the
// state without keeping the handle itself alive.
type lifecycle struct {
	once     sync.Once
	tag      Tag
	finalize func(any)
	state    any
}

func (l *lifecycle) run() {
	l.once.Do(func() {
		if l.finalize != nil {
			l.finalize(l.state)
			Logger().Debug("vector: finalized", zap.String("class", string(l.tag)))
		}
		l.state = nil
	})
}

// NewHandle binds state to class c with one reference. Hosts use it to
// create handles of their own classes. It panics if c is incomplete.
func NewHandle(c *Class, state any) *Handle {
	if err := c.validate(); err != nil {
		panic(err.Error())
	}

	h := &Handle{
		class: c,
		state: state,
		life: &lifecycle{
			tag:      c.Tag,
			finalize: c.Finalize,
			state:    state,
		},
	}
	h.refs.Store(1)
	if c.Finalize != nil {
		h.cleanup = runtime.AddCleanup(h, (*lifecycle).run, h.life)
	}
	return h
}

// Class returns the handle's class.
func (h *Handle) Class() *Class {
	return h.class
}

// Tag returns the tag of the handle's class.
func (h *Handle) Tag() Tag {
	return h.class.Tag
}

// Len returns the number of elements.
func (h *Handle) Len() int {
	return h.class.Length(h.state)
}

// At returns element i. The index is not checked; out-of-range i is
// undefined and may panic.
func (h *Handle) At(i int) float64 {
	return h.class.Elt(h.state, i)
}

// DataOrNil returns the contiguous storage if it exists without further
// work, or nil.
func (h *Handle) DataOrNil() []float64 {
	return h.class.DataOrNil(h.state)
}

// Data returns the contiguous storage, computing it if necessary.
// The slice aliases the handle's storage and must not be modified.
func (h *Handle) Data() []float64 {
	return h.class.Data(h.state)
}

// Region returns up to count elements starting at start. The length of
// the result is the actual count, min(count, Len()-start), and zero when
// start is past the end or count is not positive. A negative start is
// clamped to 0, so the result then begins at element 0. May materialize.
func (h *Handle) Region(start, count int) []float64 {
	if h.class.Region != nil {
		return h.class.Region(h.state, start, count)
	}
	return clampRegion(h.Data(), start, count)
}

// Describe returns a one-line diagnostic of the handle's state.
func (h *Handle) Describe() string {
	return h.class.Describe(h.state)
}

// String implements fmt.Stringer.
func (h *Handle) String() string {
	return h.Describe()
}

// Retain adds a reference and returns h.
func (h *Handle) Retain() *Handle {
	if h.refs.Add(1) <= 1 {
		panic("vector: retain of released handle")
	}
	return h
}

// Release drops a reference. The class finalizer runs when the last one is
// dropped. Using the handle afterwards is undefined.
func (h *Handle) Release() {
	n := h.refs.Add(-1)
	switch {
	case n > 0:
		return
	case n < 0:
		panic("vector: handle released too many times")
	}
	if h.class.Finalize != nil {
		h.cleanup.Stop()
	}
	h.life.run()
}

// share returns a handle that observes the current contents of h for as
// long as it lives. The caller owns one reference to the result.
func (h *Handle) share() *Handle {
	if h.class.Share == nil {
		return h.Retain()
	}
	return NewHandle(h.class, h.class.Share(h.state))
}

// clampRegion returns data[start:start+n] with n = min(count, len-start).
// start is first clamped into [0, len(data)].
func clampRegion(data []float64, start, count int) []float64 {
	if start < 0 {
		start = 0
	}
	if start > len(data) {
		start = len(data)
	}
	n := min(count, len(data)-start)
	if n < 0 {
		n = 0
	}
	return data[start : start+n : start+n]
}
