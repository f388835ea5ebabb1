package vector

import (
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-altvec/transform"
	"go.uber.org/zap"
)

// lazyState is unmaterialized while cache is nil. Once cache is published
// it never changes.
type lazyState struct {
	source *Handle
	fn     transform.Transform
	cache  atomic.Pointer[[]float64]

	// cacheView is a borrowed handle over the cache, built on first Inspect.
	cacheView atomic.Pointer[Handle]
}

func lazyOf(state any) *lazyState {
	return state.(*lazyState)
}

// LazyClass is the operation table of lazy transform views.
var LazyClass = &Class{
	Tag:    TagLazy,
	Length: func(s any) int { return lazyOf(s).source.Len() },
	Elt:    func(s any, i int) float64 { return lazyOf(s).at(i) },
	DataOrNil: func(s any) []float64 {
		if c := lazyOf(s).cache.Load(); c != nil {
			return *c
		}
		return nil
	},
	Data: func(s any) []float64 { return lazyOf(s).materialize() },
	Region: func(s any, start, count int) []float64 {
		return clampRegion(lazyOf(s).materialize(), start, count)
	},
	Describe: func(s any) string { return lazyOf(s).describe() },
	Children: func(s any) []*Handle { return lazyOf(s).children() },
	Finalize: func(s any) {
		st := lazyOf(s)
		st.cache.Store(nil)
		st.source.Release()
	},
}

// Lazy is a handle whose values are fn applied to a source handle.
type Lazy struct {
	*Handle
}

// NewLazy returns a view computing fn(source.At(i)) on demand.
//
// The view takes its own reference to source and marks owned storage
// copy-on-write, so later mutation of source through its owner does not
// change the view. Panics if source is nil or fn has no function.
func NewLazy(source *Handle, fn transform.Transform, opts ...Option) *Lazy {
	if source == nil {
		panic("vector: nil source")
	}
	if !fn.Valid() {
		panic("vector: nil transform")
	}

	cfg := ApplyOptions(opts...)
	c := cfg.Registry.MustLookup(TagLazy)
	return &Lazy{Handle: NewHandle(c, &lazyState{source: source.share(), fn: fn})}
}

func (l *Lazy) lazy() *lazyState {
	return lazyOf(l.state)
}

// IsMaterialized reports whether the cache has been computed.
func (l *Lazy) IsMaterialized() bool {
	return l.lazy().cache.Load() != nil
}

// Source returns the handle the view reads from. For an owned source this
// is a read-only sibling of the handle passed to NewLazy.
func (l *Lazy) Source() *Handle {
	return l.lazy().source
}

// Transform returns the view's elementwise function.
func (l *Lazy) Transform() transform.Transform {
	return l.lazy().fn
}

func (s *lazyState) at(i int) float64 {
	if c := s.cache.Load(); c != nil {
		return (*c)[i]
	}
	return s.fn.Apply(s.source.At(i))
}

// materialize computes and publishes the cache if needed and returns it.
func (s *lazyState) materialize() []float64 {
	if c := s.cache.Load(); c != nil {
		return *c
	}

	n := s.source.Len()
	out := make([]float64, n)

	path := "elementwise"
	if src := s.source.DataOrNil(); src != nil {
		s.fn.Map(out, src[:n])
		path = "block"
	} else {
		for i := range out {
			out[i] = s.fn.Apply(s.source.At(i))
		}
	}

	if !s.cache.CompareAndSwap(nil, &out) {
		return *s.cache.Load()
	}

	Logger().Debug("vector: materialized",
		zap.String("transform", s.fn.String()),
		zap.Int("len", n),
		zap.String("path", path))
	return out
}

func (s *lazyState) describe() string {
	c := s.cache.Load()
	if c == nil {
		return fmt.Sprintf("lazy(%s) (len=%d)", s.fn, s.source.Len())
	}
	return fmt.Sprintf("materialized lazy(%s) (len=%d, src=%s, cache=%p)",
		s.fn, len(*c), s.source.Tag(), *c)
}

func (s *lazyState) children() []*Handle {
	c := s.cache.Load()
	if c == nil {
		return []*Handle{s.source}
	}

	view := s.cacheView.Load()
	if view == nil {
		view = NewHandle(BorrowedClass, &borrowedState{data: *c})
		if !s.cacheView.CompareAndSwap(nil, view) {
			view = s.cacheView.Load()
		}
	}
	return []*Handle{s.source, view}
}
