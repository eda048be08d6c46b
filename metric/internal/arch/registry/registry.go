// Package registry provides the kernel registry for the metric reductions.
//
// Multiple kernel variants (generic, SSE2, AVX2, NEON) coexist; architecture
// packages register themselves via init() functions and the metric package
// selects the highest-priority variant compatible with the current CPU at
// first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-imgmetric/internal/cpu"
)

// PowSumsFn accumulates the three p=3 power sums of one row segment of
// non-negative distortion values: sum of d^3, d^6 and d^12. Each float32
// sample is promoted to float64 before multiplying so accumulation error
// stays bounded on large images.
type PowSumsFn func(row []float32) (s3, s6, s12 float64)

// WeightedSSDFn accumulates weight * (a[i]-b[i])^2 over one row segment.
// Both slices must have equal length.
type WeightedSSDFn func(a, b []float32, weight float64) float64

// OpEntry is one registered kernel variant.
type OpEntry struct {
	// Name is a human-readable identifier ("generic", "sse2", "avx2", "neon").
	Name string

	// SIMDLevel is the instruction set this variant is tuned for.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible variants
	// exist; higher wins. Generic: 0, SSE2: 10, NEON: 15, AVX2: 20.
	Priority int

	PowSums     PowSumsFn
	WeightedSSD WeightedSSDFn
}

// OpRegistry stores available kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds a kernel variant entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features, or nil
// if nothing is registered (which cannot happen while the generic fallback
// package is linked in).
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

func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds a handful of entries.
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

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
