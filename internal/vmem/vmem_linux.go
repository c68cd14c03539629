//go:build linux

package vmem

import (
	"golang.org/x/sys/unix"
)

// CanAttemptHuge reports whether huge-page backing can be attempted.
// Linux always can: even with no hugetlb pages reserved, transparent
// huge pages are requested via madvise.
func CanAttemptHuge() bool {
	return true
}

// Map reserves size bytes of anonymous, private, read-write memory.
//
// When huge is true a hugetlb mapping is attempted first; if the system
// has no huge pages configured, the reservation falls back to a standard
// mapping carrying MADV_HUGEPAGE advice. hugeUsed reports whether
// huge-page backing was applied, and must be passed back to Unmap so the
// matching release path runs.
func Map(size int, huge bool) (data []byte, hugeUsed bool, err error) {
	const prot = unix.PROT_READ | unix.PROT_WRITE
	if huge {
		data, err = unix.Mmap(-1, 0, size, prot, unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_HUGETLB)
		if err == nil {
			return data, true, nil
		}
		data, err = unix.Mmap(-1, 0, size, prot, unix.MAP_PRIVATE|unix.MAP_ANON)
		if err != nil {
			return nil, false, err
		}
		// Advisory only: the kernel may still back the region with
		// standard pages without affecting correctness.
		_ = unix.Madvise(data, unix.MADV_HUGEPAGE)
		return data, true, nil
	}
	data, err = unix.Mmap(-1, 0, size, prot, unix.MAP_PRIVATE|unix.MAP_ANON)
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

// Unmap returns the mapping to the system. huge must match the value
// reported by Map for this region.
func Unmap(data []byte, huge bool) error {
	if len(data) == 0 {
		return nil
	}
	if huge {
		// Let the kernel reclaim backing pages eagerly. Fails with
		// EINVAL on hugetlb mappings, which munmap handles anyway.
		_ = unix.Madvise(data, unix.MADV_FREE)
	}
	return unix.Munmap(data)
}
