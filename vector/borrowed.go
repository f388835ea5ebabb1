package vector

import "fmt"

type borrowedState struct {
	data []float64
}

func borrowedOf(state any) *borrowedState {
	return state.(*borrowedState)
}

// BorrowedClass is the operation table of borrowed vectors. It has no
// finalizer: the storage belongs to the caller.
var BorrowedClass = &Class{
	Tag:       TagBorrowed,
	Length:    func(s any) int { return len(borrowedOf(s).data) },
	Elt:       func(s any, i int) float64 { return borrowedOf(s).data[i] },
	DataOrNil: func(s any) []float64 { return borrowedOf(s).data },
	Data:      func(s any) []float64 { return borrowedOf(s).data },
	Region: func(s any, start, count int) []float64 {
		return clampRegion(borrowedOf(s).data, start, count)
	},
	Describe: func(s any) string {
		d := borrowedOf(s).data
		return fmt.Sprintf("borrowed (len=%d, ptr=%p)", len(d), d)
	},
}

// Borrow wraps values without copying.
//
// The caller must keep values alive and unmodified for as long as the
// handle, or any lazy view of it, is in use. This is not checked.
func Borrow(values []float64, opts ...Option) *Handle {
	cfg := ApplyOptions(opts...)
	if values == nil {
		values = []float64{}
	}
	return NewHandle(cfg.Registry.MustLookup(TagBorrowed), &borrowedState{data: values})
}
