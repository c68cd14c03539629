// Package track provides an optional registry over the block allocator
// that detects double frees and overlapping live regions.
//
// The block package deliberately keeps no bookkeeping, so misuse like
// freeing a handle twice cannot be caught there. A Tracker wraps
// Allocate and Free with a mutex-guarded map of live regions, at a cost
// the fast path never pays: only callers that construct a Tracker get
// the checks. Intended for tests and debug builds.
package track

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joshuapare/memkit/block"
)

var (
	// ErrUntracked indicates a Free for a region this tracker never
	// issued, or one it already released (a double free).
	ErrUntracked = errors.New("track: region not tracked (double free or foreign handle)")

	// ErrOverlap indicates the allocator returned a region overlapping
	// a live tracked allocation.
	ErrOverlap = errors.New("track: overlapping live regions")
)

// Allocation describes one live tracked region.
type Allocation struct {
	Addr  uintptr
	Len   int
	Flags block.Flags
}

// Tracker wraps the block allocator with a registry of live regions.
// Safe for concurrent use. The overlap check is a linear scan of live
// allocations, acceptable for a debugging layer.
type Tracker struct {
	mu     sync.Mutex
	live   map[uintptr]Allocation
	allocs uint64
	frees  uint64
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{live: make(map[uintptr]Allocation)}
}

// Allocate reserves a region through block.Allocate and records it.
// If the new region overlaps a live tracked allocation the region is
// still returned, together with an error wrapping ErrOverlap; the
// caller decides how hard to fail.
func (t *Tracker) Allocate(numBytes int, sequential, clear bool) (block.Memory, error) {
	m, err := block.Allocate(numBytes, sequential, clear)
	if err != nil {
		return m, err
	}

	a := Allocation{Addr: m.Addr(), Len: m.Len(), Flags: m.Flags()}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, o := range t.live {
		if a.Addr < o.Addr+uintptr(o.Len) && o.Addr < a.Addr+uintptr(a.Len) {
			t.live[a.Addr] = a
			t.allocs++
			return m, fmt.Errorf("%w: [0x%x +%d) and [0x%x +%d)", ErrOverlap, a.Addr, a.Len, o.Addr, o.Len)
		}
	}
	t.live[a.Addr] = a
	t.allocs++
	return m, nil
}

// Free releases a tracked region. Invalid handles are a no-op, matching
// block.Free. Freeing a region the tracker does not know returns an
// error wrapping ErrUntracked without touching the mapping, turning a
// double free into a reported failure instead of undefined behavior.
func (t *Tracker) Free(m *block.Memory) error {
	if m == nil || m.Status() != block.StatusOK {
		return nil
	}

	addr := m.Addr()
	t.mu.Lock()
	_, ok := t.live[addr]
	if ok {
		delete(t.live, addr)
		t.frees++
	}
	t.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: 0x%x", ErrUntracked, addr)
	}
	return m.Free()
}

// Live returns the number of live tracked regions.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Allocs returns the total number of tracked allocations.
func (t *Tracker) Allocs() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Frees returns the total number of tracked releases.
func (t *Tracker) Frees() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frees
}

// Leaks returns a snapshot of regions allocated but never freed.
func (t *Tracker) Leaks() []Allocation {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Allocation, 0, len(t.live))
	for _, a := range t.live {
		out = append(out, a)
	}
	return out
}
