package transform

// Func is a pure scalar function. It must be total and free of side effects.
type Func func(float64) float64

// Transform is a named elementwise function with an optional block kernel.
type Transform struct {
	// Name labels the transform in diagnostics, e.g. "abs" or "scale(2)".
	Name string

	// Apply computes one element.
	Apply Func

	// Block computes dst[i] = Apply(src[i]) for equal-length slices.
	// dst may alias src. Nil means Map falls back to the generic map kernel.
	Block func(dst, src []float64)
}

// New returns a Transform without a dedicated block kernel.
// It panics if fn is nil.
func New(name string, fn Func) Transform {
	if fn == nil {
		panic("transform: nil function")
	}
	return Transform{Name: name, Apply: fn}
}

// Valid reports whether t has a scalar function.
func (t Transform) Valid() bool {
	return t.Apply != nil
}

// Map writes Apply(src[i]) into dst[i]. dst may alias src.
// Panics if the slice lengths differ.
func (t Transform) Map(dst, src []float64) {
	if len(dst) != len(src) {
		panic("transform: slice length mismatch")
	}
	if t.Block != nil {
		t.Block(dst, src)
		return
	}
	kernels().MapBlock(dst, src, t.Apply)
}

// String returns the transform name.
func (t Transform) String() string {
	if t.Name == "" {
		return "func"
	}
	return t.Name
}

// Compose returns the transform x -> outer(inner(x)).
//
// When both sides carry block kernels the composition runs them back to
// back in place, otherwise it maps the fused scalar function.
func Compose(outer, inner Transform) Transform {
	if !outer.Valid() || !inner.Valid() {
		panic("transform: nil function")
	}

	fo, fi := outer.Apply, inner.Apply
	c := Transform{
		Name:  outer.String() + "(" + inner.String() + ")",
		Apply: func(x float64) float64 { return fo(fi(x)) },
	}
	if outer.Block != nil && inner.Block != nil {
		c.Block = func(dst, src []float64) {
			inner.Block(dst, src)
			outer.Block(dst, dst)
		}
	}
	return c
}
