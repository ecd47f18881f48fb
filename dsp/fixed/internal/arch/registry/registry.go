// Package registry holds the Q7 kernel implementations available to
// package fixed.
//
// Architecture-specific strategies register themselves from init()
// functions. The fixed package selects the highest-priority entry the
// current CPU supports on first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// NegateFn writes the saturating negation of src into dst.
// Callers guarantee len(dst) == len(src).
type NegateFn func(dst, src []int8)

// OpEntry is one registered Q7 kernel implementation.
type OpEntry struct {
	// Name identifies the strategy (e.g. "generic", "swar4").
	Name string

	// SIMDLevel is the instruction set the strategy is tuned for.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	//   - generic: 0
	//   - SSE2: 10
	//   - NEON: 15
	Priority int

	Negate NegateFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default Q7 kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the entry registered under name, or nil.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// must be called with r.mu held
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
