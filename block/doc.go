// Package block provides coarse-grained allocation of contiguous memory
// regions directly from the operating system's virtual-memory primitives.
//
// # Overview
//
// One Allocate call reserves one contiguous region; Free releases it as a
// unit. There is no heap, no free-list reuse, and no compaction: the
// package sits directly on top of mmap/VirtualAlloc and exists for
// workloads that want page-granular blocks with predictable alignment and
// optional huge-page backing.
//
// # Handles
//
// Allocate returns a Memory value describing the region: its status, the
// strategy flags needed at release time, and the reserved byte range. A
// Memory value is either valid (Status() == StatusOK) or invalid; the
// remaining fields of an invalid handle are meaningless and must not be
// used.
//
// # Huge pages
//
// Requests whose page-rounded size is a nonzero multiple of 2 MiB are
// reserved with huge-page backing where the platform can attempt it
// (hugetlb or transparent huge pages on Linux, large pages on Windows).
// A failed huge-page reservation silently falls back to standard pages;
// the flags on the returned handle always describe what was actually
// used, because Free selects the release path from them.
//
// # Advisory hints
//
// The sequential argument to Allocate requests a sequential access
// advisory (MADV_SEQUENTIAL) on the mapping. It is a performance hint
// with no correctness effect and is ignored on platforms without an
// equivalent.
//
// # Caller responsibilities
//
// The package keeps no registry of issued handles. A valid Memory value
// must be freed exactly once: freeing through the same *Memory twice is
// a safe no-op (Free consumes the handle), but releasing two copies of
// the same valid handle, or a handle this package never issued, is
// caller misuse the allocator cannot detect. The track package provides
// an optional registry for builds that want that detection.
//
// # Thread safety
//
// Allocate and Free hold no shared state and are safe to call from any
// number of goroutines. Individual Memory values are not synchronized;
// hand them between goroutines like any other value.
package block
