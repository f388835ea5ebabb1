// Package generic holds the pure Go block kernels.
package generic

import "math"

func checkLen(dst, src []float64) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
}

// AbsBlock computes dst[i] = |src[i]|.
func AbsBlock(dst, src []float64) {
	checkLen(dst, src)
	for i, x := range src {
		dst[i] = math.Abs(x)
	}
}

// NegateBlock computes dst[i] = -src[i].
func NegateBlock(dst, src []float64) {
	checkLen(dst, src)
	for i, x := range src {
		dst[i] = -x
	}
}

// SqrtBlock computes dst[i] = sqrt(src[i]). Negative inputs yield NaN.
func SqrtBlock(dst, src []float64) {
	checkLen(dst, src)
	for i, x := range src {
		dst[i] = math.Sqrt(x)
	}
}

// OffsetBlock computes dst[i] = src[i] + c.
func OffsetBlock(dst, src []float64, c float64) {
	checkLen(dst, src)
	for i, x := range src {
		dst[i] = x + c
	}
}

// ClampBlock computes dst[i] = min(max(src[i], lo), hi). NaN passes through.
func ClampBlock(dst, src []float64, lo, hi float64) {
	checkLen(dst, src)
	for i, x := range src {
		dst[i] = Clamp(x, lo, hi)
	}
}

// Clamp limits x to [lo, hi]. NaN passes through unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// MapBlock computes dst[i] = fn(src[i]).
//
// The loop is unrolled by four; fn is assumed pure, so evaluation order is
// unobservable.
func MapBlock(dst, src []float64, fn func(float64) float64) {
	checkLen(dst, src)

	i := 0
	n := len(src)
	for ; i+3 < n; i += 4 {
		dst[i] = fn(src[i])
		dst[i+1] = fn(src[i+1])
		dst[i+2] = fn(src[i+2])
		dst[i+3] = fn(src[i+3])
	}
	for ; i < n; i++ {
		dst[i] = fn(src[i])
	}
}
