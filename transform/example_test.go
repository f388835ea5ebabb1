package transform_test

import (
	"fmt"

	"github.com/cwbudde/algo-altvec/transform"
)

func ExampleCompose() {
	t := transform.Compose(transform.Scale(10), transform.Abs)

	src := []float64{-2, -1, 0, 1, 2}
	dst := make([]float64, len(src))
	t.Map(dst, src)

	fmt.Println(t)
	fmt.Println(dst)

	// Output:
	// scale(10)(abs)
	// [20 10 0 10 20]
}
