package accel

import (
	"testing"

	"github.com/cwbudde/algo-altvec/internal/kernel/generic"
	"github.com/cwbudde/algo-altvec/internal/testutil"
)

func TestOffsetBlockMatchesGeneric(t *testing.T) {
	// Lengths straddle the constant chunk and the SIMD tails.
	for _, n := range []int{0, 1, 3, 7, chunk - 1, chunk, chunk + 1, 3*chunk + 5} {
		src := testutil.DeterministicNoise(int64(n)+1, 4, n)

		got := make([]float64, n)
		want := make([]float64, n)
		OffsetBlock(got, src, 0.375)
		generic.OffsetBlock(want, src, 0.375)

		testutil.RequireBitIdentical(t, got, want)
	}
}

func TestOffsetBlockInPlace(t *testing.T) {
	buf := []float64{1, -2, 3, -4, 5}
	OffsetBlock(buf, buf, -1)

	testutil.RequireBitIdentical(t, buf, []float64{0, -3, 2, -5, 4})
}

func TestOffsetBlockLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched lengths")
		}
	}()
	OffsetBlock(make([]float64, 2), make([]float64, 3), 1)
}
