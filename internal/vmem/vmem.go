// Package vmem provides platform-specific anonymous memory reservation
// primitives for the block allocator.
//
// Each platform file implements the same surface:
//
//   - Map reserves an anonymous, private, read-write region
//   - Advise applies an access-pattern advisory to a mapping
//   - Unmap returns a region to the system
//   - CanAttemptHuge reports whether huge-page backing can be attempted
//
// All reservations handed out by Map are zero-filled: anonymous mappings
// (unix), freshly committed pages (windows), and Go heap slices (the
// fallback) all start zeroed.
package vmem

import "os"

// HugePageSize is the huge/large page granularity the allocator targets.
// 2 MiB is the common size on both Linux (hugetlb and transparent huge
// pages) and Windows (large pages on x86-64).
const HugePageSize = 2 * 1024 * 1024

// PageSize returns the standard page size of the running system.
func PageSize() int {
	return os.Getpagesize()
}
