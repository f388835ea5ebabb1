// Package accel holds block kernels built on the algo-vecmath SIMD
// primitives. Only kernels that match the generic ones bit for bit live
// here; the registry fills the rest from the generic entry.
package accel

import "github.com/cwbudde/algo-vecmath"

// chunk is the length of the constant vector fed to the add kernel.
const chunk = 256

// OffsetBlock computes dst[i] = src[i] + c. dst and src may be the same
// slice. Panics if the lengths differ.
func OffsetBlock(dst, src []float64, c float64) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}

	var consts [chunk]float64
	for i := range min(chunk, len(src)) {
		consts[i] = c
	}

	copy(dst, src)
	for off := 0; off < len(dst); off += chunk {
		end := min(off+chunk, len(dst))
		vecmath.AddBlockInPlace(dst[off:end], consts[:end-off])
	}
}
