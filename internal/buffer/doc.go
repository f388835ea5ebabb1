// Package buffer provides the growable float64 storage behind owned vectors
// and a pool of scratch buffers for block-wise reads.
//
// A Buffer carries a share count. While more than one holder shares it the
// buffer is read-only; mutators obtain a private copy through Unique first.
package buffer
