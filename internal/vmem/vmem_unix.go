//go:build unix && !linux

package vmem

import (
	"golang.org/x/sys/unix"
)

// CanAttemptHuge reports whether huge-page backing can be attempted.
// Non-Linux unix systems expose no portable huge-page request, so the
// allocator stays on standard pages.
func CanAttemptHuge() bool {
	return false
}

// Map reserves size bytes of anonymous, private, read-write memory.
// The huge parameter is accepted for interface parity but never honored;
// hugeUsed is always false.
func Map(size int, huge bool) (data []byte, hugeUsed bool, err error) {
	data, err = unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, false, err
	}
	return data, false, nil
}

// Advise applies the access-pattern advisory for the mapping.
func Advise(data []byte, sequential bool) error {
	advice := unix.MADV_NORMAL
	if sequential {
		advice = unix.MADV_SEQUENTIAL
	}
	return unix.Madvise(data, advice)
}

// Unmap returns the mapping to the system.
func Unmap(data []byte, huge bool) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}
