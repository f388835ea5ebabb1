package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	approx "github.com/meko-christian/algo-approx"
)

// Identity returns its input.
var Identity = Transform{
	Name:  "identity",
	Apply: func(x float64) float64 { return x },
	Block: func(dst, src []float64) { copy(dst, src) },
}

// Abs is the absolute value.
var Abs = Transform{
	Name:  "abs",
	Apply: math.Abs,
	Block: func(dst, src []float64) { absBlock(dst, src) },
}

// Negate flips the sign.
var Negate = Transform{
	Name:  "negate",
	Apply: func(x float64) float64 { return -x },
	Block: func(dst, src []float64) { negateBlock(dst, src) },
}

// Square multiplies each value by itself.
var Square = Transform{
	Name:  "square",
	Apply: func(x float64) float64 { return x * x },
	Block: func(dst, src []float64) { vecmath.MulBlock(dst, src, src) },
}

// Sqrt is the square root. Negative inputs yield NaN.
var Sqrt = Transform{
	Name:  "sqrt",
	Apply: math.Sqrt,
	Block: func(dst, src []float64) { sqrtBlock(dst, src) },
}

// Exp is the natural exponential.
var Exp = New("exp", math.Exp)

// Log is the natural logarithm.
var Log = New("log", math.Log)

// FastExp approximates e^x with algo-approx.
var FastExp = New("fastexp", func(x float64) float64 { return approx.FastExp(x) })

// FastLog approximates ln(x) with algo-approx.
var FastLog = New("fastlog", func(x float64) float64 { return approx.FastLog(x) })

// FastSqrt approximates sqrt(x) with algo-approx.
var FastSqrt = New("fastsqrt", func(x float64) float64 { return approx.FastSqrt(x) })

// Scale multiplies each value by k.
func Scale(k float64) Transform {
	return Transform{
		Name:  fmt.Sprintf("scale(%g)", k),
		Apply: func(x float64) float64 { return x * k },
		Block: func(dst, src []float64) { vecmath.ScaleBlock(dst, src, k) },
	}
}

// Offset adds c to each value.
func Offset(c float64) Transform {
	return Transform{
		Name:  fmt.Sprintf("offset(%g)", c),
		Apply: func(x float64) float64 { return x + c },
		Block: func(dst, src []float64) { offsetBlock(dst, src, c) },
	}
}

// Clamp limits each value to [lo, hi]. NaN passes through.
// Panics if lo > hi.
func Clamp(lo, hi float64) Transform {
	if lo > hi {
		panic(fmt.Sprintf("transform: clamp bounds inverted (%g > %g)", lo, hi))
	}
	return Transform{
		Name:  fmt.Sprintf("clamp(%g,%g)", lo, hi),
		Apply: func(x float64) float64 { return clamp(x, lo, hi) },
		Block: func(dst, src []float64) { clampBlock(dst, src, lo, hi) },
	}
}

func absBlock(dst, src []float64) {
	k := kernels()
	if k.AbsBlock != nil {
		k.AbsBlock(dst, src)
		return
	}
	k.MapBlock(dst, src, math.Abs)
}

func negateBlock(dst, src []float64) {
	k := kernels()
	if k.NegateBlock != nil {
		k.NegateBlock(dst, src)
		return
	}
	k.MapBlock(dst, src, func(x float64) float64 { return -x })
}

func sqrtBlock(dst, src []float64) {
	k := kernels()
	if k.SqrtBlock != nil {
		k.SqrtBlock(dst, src)
		return
	}
	k.MapBlock(dst, src, math.Sqrt)
}

func offsetBlock(dst, src []float64, c float64) {
	k := kernels()
	if k.OffsetBlock != nil {
		k.OffsetBlock(dst, src, c)
		return
	}
	k.MapBlock(dst, src, func(x float64) float64 { return x + c })
}

func clampBlock(dst, src []float64, lo, hi float64) {
	k := kernels()
	if k.ClampBlock != nil {
		k.ClampBlock(dst, src, lo, hi)
		return
	}
	k.MapBlock(dst, src, func(x float64) float64 { return clamp(x, lo, hi) })
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
