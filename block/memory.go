package block

import "unsafe"

// Status is the allocation result code carried by every Memory value.
// StatusOK means the allocation succeeded and the remaining fields are
// valid; any other value means the handle is invalid.
type Status uint32

const (
	// StatusOK indicates a successful allocation.
	StatusOK Status = 0

	// StatusEmptyAllocation indicates a zero or negative size request.
	StatusEmptyAllocation Status = 1

	// StatusInvalidAlignment indicates a size that could not be aligned.
	// Kept for stability of the status taxonomy; the current rounding
	// policy cannot produce it.
	StatusInvalidAlignment Status = 2

	// StatusNoMemory indicates the OS reservation failed.
	StatusNoMemory Status = 3

	// StatusUnsupported indicates the request needs a feature the
	// platform does not provide.
	StatusUnsupported Status = 4
)

// Flags is the bit-packed record of how a region was reserved. Free
// reads it to select the matching release path; callers must carry it
// back unmodified with the rest of the handle.
type Flags uint32

const (
	// FlagHugePages marks a region reserved with huge-page backing.
	FlagHugePages Flags = 1 << 0

	// FlagSequential marks a region mapped with a sequential-access
	// advisory.
	FlagSequential Flags = 1 << 1
)

// Strategy identifies how a region was reserved. It is the enumerated
// form of the strategy bit in Flags; all internal logic uses Strategy
// and only the handle carries the packed form.
type Strategy uint8

const (
	// StrategyStandard reserves with standard page granularity.
	StrategyStandard Strategy = iota

	// StrategyHugePage reserves with huge-page backing.
	StrategyHugePage
)

func (s Strategy) flags() Flags {
	if s == StrategyHugePage {
		return FlagHugePages
	}
	return 0
}

// strategyOf extracts the reservation strategy from handle flags.
func strategyOf(f Flags) Strategy {
	if f&FlagHugePages != 0 {
		return StrategyHugePage
	}
	return StrategyStandard
}

// Memory is the handle for one allocated region. Obtain handles from
// Allocate and treat the fields as opaque. The zero value behaves like
// an already-consumed handle: it holds no bytes and Free on it is a
// no-op.
type Memory struct {
	status Status
	flags  Flags
	data   []byte
}

// Status returns the allocation result code.
func (m *Memory) Status() Status {
	return m.status
}

// Flags returns the reservation flags recorded at allocation time.
func (m *Memory) Flags() Flags {
	return m.flags
}

// Strategy returns the reservation strategy recorded in the flags.
func (m *Memory) Strategy() Strategy {
	return strategyOf(m.flags)
}

// Len returns the number of reserved bytes. This is the page-rounded
// size, which may exceed the byte count passed to Allocate, and is the
// length Free releases.
func (m *Memory) Len() int {
	return len(m.data)
}

// IsEmpty reports whether the handle holds no reserved bytes.
func (m *Memory) IsEmpty() bool {
	return len(m.data) == 0
}

// Bytes returns the reserved region. Valid only while the handle is
// live; the slice must not be used after Free.
func (m *Memory) Bytes() []byte {
	return m.data
}

// Addr returns the start address of the region, or 0 for an invalid or
// consumed handle.
func (m *Memory) Addr() uintptr {
	if len(m.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&m.data[0]))
}
