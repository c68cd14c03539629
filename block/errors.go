package block

import "errors"

var (
	// ErrEmptyAllocation indicates a zero or negative byte count.
	ErrEmptyAllocation = errors.New("block: empty allocation")

	// ErrInvalidAlignment indicates a size that could not be aligned.
	ErrInvalidAlignment = errors.New("block: invalid alignment")

	// ErrNoMemory indicates the OS could not reserve the region.
	ErrNoMemory = errors.New("block: out of memory")

	// ErrUnsupported indicates a feature the platform does not provide.
	ErrUnsupported = errors.New("block: unsupported on this platform")
)

// Err returns the sentinel error corresponding to the status, or nil
// for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusEmptyAllocation:
		return ErrEmptyAllocation
	case StatusInvalidAlignment:
		return ErrInvalidAlignment
	case StatusUnsupported:
		return ErrUnsupported
	default:
		return ErrNoMemory
	}
}

// StatusOf maps an error returned by Allocate back onto the status
// taxonomy. A nil error maps to StatusOK; unrecognized errors map to
// StatusNoMemory, the catch-all reservation failure.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrEmptyAllocation):
		return StatusEmptyAllocation
	case errors.Is(err, ErrInvalidAlignment):
		return StatusInvalidAlignment
	case errors.Is(err, ErrUnsupported):
		return StatusUnsupported
	default:
		return StatusNoMemory
	}
}
