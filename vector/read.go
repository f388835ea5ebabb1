package vector

import "github.com/cwbudde/algo-altvec/internal/buffer"

var scratch = buffer.NewPool()

// Get copies up to len(dst) elements starting at start into dst and
// returns how many were copied. A negative start reads from index 0, the
// same way Region clamps it.
//
// It reads the contiguous storage when the handle already has it and falls
// back to At otherwise, so it never materializes a lazy view.
func Get(dst []float64, h *Handle, start int) int {
	n := h.Len()
	if start < 0 {
		start = 0
	}
	if start >= n {
		return 0
	}
	count := min(len(dst), n-start)

	if data := h.DataOrNil(); data != nil {
		return copy(dst[:count], data[start:start+count])
	}
	for i := range count {
		dst[i] = h.At(start + i)
	}
	return count
}

// Collect returns a fresh copy of all values without materializing.
func Collect(h *Handle) []float64 {
	out := make([]float64, h.Len())
	Get(out, h, 0)
	return out
}

// Materialize returns the contiguous storage of h, computing it if needed.
func Materialize(h *Handle) []float64 {
	return h.Data()
}

// ForEachBlock calls fn for consecutive blocks of at most blockSize
// elements, in order. offset is the index of block[0].
//
// Contiguous handles pass sub-slices of their storage. Other handles are
// read element by element into a pooled scratch block, which is reused
// between calls and must not be retained by fn. Neither path materializes.
// Panics if blockSize is not positive.
func ForEachBlock(h *Handle, blockSize int, fn func(offset int, block []float64)) {
	if blockSize <= 0 {
		panic("vector: non-positive block size")
	}

	n := h.Len()
	if data := h.DataOrNil(); data != nil {
		for off := 0; off < n; off += blockSize {
			end := min(off+blockSize, n)
			fn(off, data[off:end:end])
		}
		return
	}

	sp := scratch.Get(min(blockSize, n))
	defer scratch.Put(sp)

	for off := 0; off < n; off += blockSize {
		block := (*sp)[:min(blockSize, n-off)]
		Get(block, h, off)
		fn(off, block)
	}
}
