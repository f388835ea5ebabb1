package vector

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

func sameStorage(a, b []float64) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// rampState is a computed, non-contiguous test class: element i is
// start + step*i and Data builds a private array on demand.
type rampState struct {
	start, step float64
	n           int
	data        []float64
	finalized   *atomic.Int32
}

func rampOf(s any) *rampState { return s.(*rampState) }

func newRampClass(tag Tag) *Class {
	return &Class{
		Tag:       tag,
		Length:    func(s any) int { return rampOf(s).n },
		Elt:       func(s any, i int) float64 { r := rampOf(s); return r.start + r.step*float64(i) },
		DataOrNil: func(s any) []float64 { return rampOf(s).data },
		Data: func(s any) []float64 {
			r := rampOf(s)
			if r.data == nil {
				r.data = make([]float64, r.n)
				for i := range r.data {
					r.data[i] = r.start + r.step*float64(i)
				}
			}
			return r.data
		},
		Describe: func(s any) string {
			r := rampOf(s)
			return fmt.Sprintf("ramp (len=%d, start=%g, step=%g)", r.n, r.start, r.step)
		},
		Finalize: func(s any) {
			if f := rampOf(s).finalized; f != nil {
				f.Add(1)
			}
		},
	}
}

var rampClass = newRampClass("ramp")

func newRamp(start, step float64, n int) *Handle {
	return NewHandle(rampClass, &rampState{start: start, step: step, n: n})
}
