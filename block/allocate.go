package block

import (
	"fmt"
	"math"

	"github.com/joshuapare/memkit/internal/vmem"
)

// Allocate reserves a contiguous region of at least numBytes bytes.
//
// The request is rounded up to the page size; the returned handle's Len
// reports the rounded size. Requests whose rounded size is a multiple of
// 2 MiB are reserved with huge-page backing where possible, falling back
// silently to standard pages. sequential requests a sequential-access
// advisory on the mapping. clear guarantees the region reads as zero:
// fresh reservations are zero-filled on every supported platform, so no
// extra pass runs today, but callers that need zeroing must still pass
// clear rather than rely on that platform detail.
//
// On failure the returned error wraps one of the package sentinels and
// the handle is invalid: its Status is nonzero and no other field may be
// used. A failed handle is still safe to pass to Free.
func Allocate(numBytes int, sequential, clear bool) (Memory, error) {
	if numBytes <= 0 {
		return Memory{status: StatusEmptyAllocation}, ErrEmptyAllocation
	}
	if numBytes > math.MaxInt-vmem.PageSize() {
		return Memory{status: StatusNoMemory}, fmt.Errorf("%w: %d bytes exceeds address space", ErrNoMemory, numBytes)
	}

	h := alignmentFor(numBytes)

	data, hugeUsed, err := vmem.Map(h.size, h.strategy == StrategyHugePage)
	if err != nil && h.strategy == StrategyHugePage {
		// Internal escalation, not a retry: a failed huge-page
		// reservation drops to standard paging before giving up.
		h.strategy = StrategyStandard
		data, hugeUsed, err = vmem.Map(h.size, false)
	}
	if err != nil {
		return Memory{status: StatusNoMemory}, fmt.Errorf("%w: reserving %d bytes: %v", ErrNoMemory, h.size, err)
	}

	var flags Flags
	if hugeUsed {
		flags |= FlagHugePages
	}
	if sequential {
		flags |= FlagSequential
	}

	// Advisory only; failure never invalidates the reservation.
	_ = vmem.Advise(data, sequential)

	return Memory{status: StatusOK, flags: flags, data: data}, nil
}

// Free releases the region backing m and returns it to the system,
// consuming the handle.
//
// Free inspects the handle flags to run the release path matching the
// reservation strategy, always with the rounded length Allocate
// reserved. Freeing an invalid handle, the zero value, or a handle
// already consumed through the same pointer is a no-op, so Free is safe
// to call unconditionally after a possibly-failed Allocate. Releasing
// two distinct copies of the same valid handle is caller misuse that
// cannot be detected here; the second release fails or unmaps an
// unrelated region.
//
// A release error means the process address space can no longer be
// trusted; callers should treat it as fatal.
func (m *Memory) Free() error {
	if m == nil || m.status != StatusOK || m.data == nil {
		return nil
	}
	data := m.data
	huge := strategyOf(m.flags) == StrategyHugePage

	// Consume the handle first so a re-entrant Free through the same
	// pointer cannot see the mapping again.
	*m = Memory{status: StatusEmptyAllocation}

	if err := vmem.Unmap(data, huge); err != nil {
		return fmt.Errorf("block: releasing %d bytes: %w", len(data), err)
	}
	return nil
}
