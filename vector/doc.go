// Package vector provides a uniform handle over float64 sequences whose
// storage may be owned, borrowed or computed lazily.
//
// Every handle is bound to a Class, an operation table registered once per
// process under a Tag. Consumers call the same methods whichever class they
// hold:
//
//	Len        element count, never computes
//	At         one element, unchecked index
//	DataOrNil  contiguous storage if it already exists, else nil
//	Data       contiguous storage, computing it if needed
//	Region     contiguous sub-run, clamped to the available length
//	Describe   one-line diagnostic
//
// Three classes are built in:
//
//   - owned: an exclusively owned growable buffer (NewOwned, OwnedFrom).
//   - borrowed: a non-owning view of a caller slice (Borrow). The caller
//     keeps the slice alive and unchanged for as long as the handle is used;
//     nothing checks this.
//   - lazy: an elementwise transform of another handle (NewLazy). Single
//     element reads compute on the fly. The first Data or Region call
//     materializes the whole result once and memoizes it for the lifetime of
//     the handle.
//
// Wrapping a handle in a lazy view marks its storage copy-on-write. An owned
// vector that is later mutated copies its buffer first, so the view keeps
// seeing the values it wrapped.
//
// Handles are reference counted. Release drops a reference and runs the
// class finalizer at zero; a GC cleanup runs it if the handle is dropped
// without being released. Either way it runs exactly once.
//
// A handle is not safe for concurrent mutation. Concurrent reads are safe,
// including concurrent materialization: racing callers may each compute the
// result, but exactly one cache is published and all of them return it.
package vector
