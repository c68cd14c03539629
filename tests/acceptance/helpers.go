package acceptance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/block"
)

// mustAllocate allocates and registers cleanup, failing the test on any
// allocation error.
func mustAllocate(t *testing.T, numBytes int, sequential, clear bool) *block.Memory {
	t.Helper()

	m, err := block.Allocate(numBytes, sequential, clear)
	require.NoError(t, err, "Allocate(%d) should succeed", numBytes)
	require.Equal(t, block.StatusOK, m.Status())

	t.Cleanup(func() {
		require.NoError(t, m.Free())
	})
	return &m
}

// overlaps reports whether two address ranges intersect.
func overlaps(aAddr uintptr, aLen int, bAddr uintptr, bLen int) bool {
	return aAddr < bAddr+uintptr(bLen) && bAddr < aAddr+uintptr(aLen)
}
