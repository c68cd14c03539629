//go:build !unix && !windows

package vmem

// CanAttemptHuge reports whether huge-page backing can be attempted.
// The fallback has no virtual-memory primitives at all.
func CanAttemptHuge() bool {
	return false
}

// Map allocates from the Go heap when no virtual-memory primitives are
// available (plan9, js, wasip1). The slice starts zeroed like a fresh
// anonymous mapping.
func Map(size int, huge bool) (data []byte, hugeUsed bool, err error) {
	return make([]byte, size), false, nil
}

// Advise is a no-op in the heap fallback.
func Advise(data []byte, sequential bool) error {
	return nil
}

// Unmap releases the reference; the Go runtime reclaims the memory.
func Unmap(data []byte, huge bool) error {
	return nil
}
