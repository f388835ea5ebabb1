package vector

import (
	"fmt"

	"github.com/cwbudde/algo-altvec/internal/buffer"
)

type ownedState struct {
	buf *buffer.Buffer
}

func ownedOf(state any) *ownedState {
	return state.(*ownedState)
}

// OwnedClass is the operation table of owned vectors.
var OwnedClass = &Class{
	Tag:    TagOwned,
	Length: func(s any) int { return ownedOf(s).buf.Len() },
	Elt:    func(s any, i int) float64 { return ownedOf(s).buf.Samples()[i] },
	DataOrNil: func(s any) []float64 {
		return ownedOf(s).buf.Samples()
	},
	Data: func(s any) []float64 {
		return ownedOf(s).buf.Samples()
	},
	Region: func(s any, start, count int) []float64 {
		return clampRegion(ownedOf(s).buf.Samples(), start, count)
	},
	Describe: func(s any) string {
		b := ownedOf(s).buf
		return fmt.Sprintf("owned (len=%d, cap=%d, ptr=%p, shared=%t)",
			b.Len(), b.Cap(), b.Samples(), b.Shared())
	},
	Share: func(s any) any {
		return &ownedState{buf: ownedOf(s).buf.Share()}
	},
	Finalize: func(s any) {
		ownedOf(s).buf.Release()
	},
}

// Owned is a handle to an exclusively owned, growable vector.
// Its length changes only through Push.
type Owned struct {
	*Handle
}

// NewOwned returns an empty owned vector. WithCapacity pre-allocates.
func NewOwned(opts ...Option) *Owned {
	cfg := ApplyOptions(opts...)
	c := cfg.Registry.MustLookup(TagOwned)
	return &Owned{Handle: NewHandle(c, &ownedState{buf: buffer.New(cfg.Capacity)})}
}

// OwnedFrom returns an owned vector holding a copy of values.
func OwnedFrom(values []float64, opts ...Option) *Owned {
	cfg := ApplyOptions(opts...)
	c := cfg.Registry.MustLookup(TagOwned)
	buf := buffer.FromSlice(values)
	buf.Grow(cfg.Capacity)
	return &Owned{Handle: NewHandle(c, &ownedState{buf: buf})}
}

func (o *Owned) owned() *ownedState {
	return ownedOf(o.state)
}

// unique gives o a private buffer, copying it if a lazy view shares it.
func (o *Owned) unique() *buffer.Buffer {
	st := o.owned()
	st.buf = st.buf.Unique()
	return st.buf
}

// Push appends x. Amortized O(1) unless the buffer is shared, in which case
// it is copied once first.
func (o *Owned) Push(x float64) {
	o.unique().Append(x)
}

// Reserve ensures capacity for at least n elements without changing the
// length. Storage shared with a lazy view is copied once, at the new
// capacity. Panics if n is negative.
func (o *Owned) Reserve(n int) {
	if n < 0 {
		panic("vector: negative reserve")
	}
	if n <= o.Cap() {
		return
	}
	st := o.owned()
	st.buf = st.buf.Reserve(n)
}

// Set overwrites element i. The index is not checked.
func (o *Owned) Set(i int, x float64) {
	o.unique().Samples()[i] = x
}

// Cap returns the allocated capacity.
func (o *Owned) Cap() int {
	return o.owned().buf.Cap()
}

// Shared reports whether a lazy view currently shares the storage.
func (o *Owned) Shared() bool {
	return o.owned().buf.Shared()
}
