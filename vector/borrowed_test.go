package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowZeroCopy(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}
	h := Borrow(values)

	require.Equal(t, len(values), h.Len())
	assert.True(t, sameStorage(values, h.DataOrNil()), "DataOrNil must return the wrapped storage")
	assert.True(t, sameStorage(values, h.Data()))
	for i, x := range values {
		assert.Equal(t, x, h.At(i))
	}
}

func TestBorrowSeesCallerWrites(t *testing.T) {
	values := []float64{1, 2, 3}
	h := Borrow(values)
	values[1] = 20
	assert.Equal(t, 20.0, h.At(1))
}

func TestBorrowNil(t *testing.T) {
	h := Borrow(nil)
	assert.Equal(t, 0, h.Len())
	assert.NotNil(t, h.DataOrNil())
}

func TestBorrowRegion(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	h := Borrow(values)

	r := h.Region(3, 10)
	assert.Equal(t, []float64{40, 50}, r)
	assert.True(t, sameStorage(values[3:], r))
}

func TestBorrowHasNoFinalizer(t *testing.T) {
	values := []float64{1, 2}
	h := Borrow(values)
	h.Release()
	assert.Equal(t, []float64{1, 2}, values, "releasing a borrowed handle must not touch the storage")
	assert.Nil(t, BorrowedClass.Finalize)
}

func TestBorrowDescribe(t *testing.T) {
	h := Borrow([]float64{1, 2, 3})
	assert.Contains(t, h.Describe(), "borrowed (len=3")
}
