//go:build windows

package vmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetLargePageMinimum = kernel32.NewProc("GetLargePageMinimum")
)

// largePageMinimum returns the large-page granularity, or 0 when the
// processor does not support large pages.
func largePageMinimum() int {
	r, _, _ := procGetLargePageMinimum.Call()
	return int(r)
}

// CanAttemptHuge reports whether large-page backing can be attempted.
// Success additionally requires SeLockMemoryPrivilege at Map time;
// without it VirtualAlloc rejects MEM_LARGE_PAGES and Map falls back to
// a standard commit.
func CanAttemptHuge() bool {
	return largePageMinimum() != 0
}

// Map reserves and commits size bytes of private, read-write memory.
//
// When huge is true and size is a multiple of the large-page minimum, a
// MEM_LARGE_PAGES commit is attempted first. hugeUsed reports whether
// large pages were applied, and must be passed back to Unmap.
func Map(size int, huge bool) (data []byte, hugeUsed bool, err error) {
	const flags = windows.MEM_COMMIT | windows.MEM_RESERVE
	if huge {
		if min := largePageMinimum(); min != 0 && size%min == 0 {
			addr, allocErr := windows.VirtualAlloc(0, uintptr(size), flags|windows.MEM_LARGE_PAGES, windows.PAGE_READWRITE)
			if allocErr == nil {
				return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), true, nil
			}
			// Large pages need SeLockMemoryPrivilege; fall through to
			// a standard commit.
		}
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), flags, windows.PAGE_READWRITE)
	if err != nil {
		return nil, false, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), false, nil
}

// Advise is a no-op: Windows exposes no access-pattern advisory for
// committed private memory.
func Advise(data []byte, sequential bool) error {
	return nil
}

// Unmap releases the region. VirtualFree with MEM_RELEASE frees the
// entire reservation, so the size argument must be zero.
func Unmap(data []byte, huge bool) error {
	if len(data) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}
