// Package registry provides the implementation registry for elementwise
// transform kernels.
//
// Kernel variants register themselves via init() functions. The transform
// package selects the best entry for the current CPU once, on first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry represents a registered implementation variant of the block kernels.
//
// Not all fields need to be populated. Every kernel writes dst[i] from src[i]
// only and panics if the slice lengths differ.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation.
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred.
	Priority int

	// AbsBlock computes dst[i] = |src[i]|.
	AbsBlock func(dst, src []float64)

	// NegateBlock computes dst[i] = -src[i].
	NegateBlock func(dst, src []float64)

	// SqrtBlock computes dst[i] = sqrt(src[i]).
	SqrtBlock func(dst, src []float64)

	// OffsetBlock computes dst[i] = src[i] + c.
	OffsetBlock func(dst, src []float64, c float64)

	// ClampBlock computes dst[i] = min(max(src[i], lo), hi).
	ClampBlock func(dst, src []float64, lo, hi float64)

	// MapBlock computes dst[i] = fn(src[i]) for an arbitrary scalar function.
	MapBlock func(dst, src []float64, fn func(float64) float64)
}

// OpRegistry manages the registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil
// if none is compatible (which should never happen with a generic fallback).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Resolve merges every entry supported by features into one table. Each
// kernel comes from the highest-priority entry that provides it, so a SIMD
// variant may implement only a subset and fall back to the generic kernels.
// The merged Name and SIMDLevel are those of the top entry. ok is false if
// no entry is compatible.
func (r *OpRegistry) Resolve(features cpu.Features) (merged OpEntry, ok bool) {
	top := r.Lookup(features)
	if top == nil {
		return OpEntry{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	merged = OpEntry{Name: top.Name, SIMDLevel: top.SIMDLevel, Priority: top.Priority}
	for i := range r.entries {
		e := &r.entries[i]
		if !cpu.Supports(features, e.SIMDLevel) {
			continue
		}
		if merged.AbsBlock == nil {
			merged.AbsBlock = e.AbsBlock
		}
		if merged.NegateBlock == nil {
			merged.NegateBlock = e.NegateBlock
		}
		if merged.SqrtBlock == nil {
			merged.SqrtBlock = e.SqrtBlock
		}
		if merged.OffsetBlock == nil {
			merged.OffsetBlock = e.OffsetBlock
		}
		if merged.ClampBlock == nil {
			merged.ClampBlock = e.ClampBlock
		}
		if merged.MapBlock == nil {
			merged.MapBlock = e.MapBlock
		}
	}
	return merged, true
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
