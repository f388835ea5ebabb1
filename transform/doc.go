// Package transform provides pure elementwise functions float64 -> float64
// for lazy vector views.
//
// A Transform pairs a scalar function with an optional block kernel. The
// scalar form serves single-element reads; the block form serves full
// materialization from a contiguous source. Both forms must agree bit for
// bit on every input, so a view yields the same values whichever path
// computed them.
//
// Block kernels come from the internal kernel registry, selected once per
// process from the detected CPU features, or from algo-vecmath where it
// already provides the operation.
package transform
