package block

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/internal/vmem"
)

// TestAllocate_RoundsToPageSize tests that the reserved length is at
// least the request and a multiple of the page size.
func TestAllocate_RoundsToPageSize(t *testing.T) {
	for _, size := range []int{1, 100, vmem.PageSize() - 1, vmem.PageSize(), vmem.PageSize() + 1, 63 * 1024} {
		m, err := Allocate(size, false, false)
		require.NoError(t, err, "Allocate(%d) should succeed", size)
		require.Equal(t, StatusOK, m.Status())

		assert.GreaterOrEqual(t, m.Len(), size, "Len should cover the request for %d", size)
		assert.Zero(t, m.Len()%vmem.PageSize(), "Len should be page aligned for %d", size)
		assert.NotZero(t, m.Addr(), "valid handle should have an address")

		require.NoError(t, m.Free())
	}
}

// TestAllocate_ClearZeroes tests that a cleared region reads as zero in
// every byte.
func TestAllocate_ClearZeroes(t *testing.T) {
	m, err := Allocate(256*1024, false, true)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, m.Free())
	}()

	for i, b := range m.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d not zero: 0x%x", i, b)
		}
	}
}

// TestAllocate_WritableRegion tests that the full reserved region is
// readable and writable.
func TestAllocate_WritableRegion(t *testing.T) {
	m, err := Allocate(3*vmem.PageSize()+17, false, false)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, m.Free())
	}()

	data := m.Bytes()
	for i := range data {
		data[i] = byte(i)
	}
	assert.Equal(t, byte(0), data[0])
	assert.Equal(t, byte(len(data)-1), data[len(data)-1])
}

// TestAllocate_ZeroBytesFails tests the zero-size policy: always the
// same failure status, never a usable handle.
func TestAllocate_ZeroBytesFails(t *testing.T) {
	for range 3 {
		m, err := Allocate(0, false, false)
		require.ErrorIs(t, err, ErrEmptyAllocation)
		assert.Equal(t, StatusEmptyAllocation, m.Status())
		assert.Zero(t, m.Addr())
		assert.Zero(t, m.Len())
	}
}

// TestAllocate_NegativeBytesFails tests that negative sizes are
// rejected like zero sizes.
func TestAllocate_NegativeBytesFails(t *testing.T) {
	m, err := Allocate(-1, false, false)
	require.ErrorIs(t, err, ErrEmptyAllocation)
	assert.Equal(t, StatusEmptyAllocation, m.Status())
}

// TestAllocate_UnsatisfiableFails tests that a request beyond the
// address space fails with a nonzero status and a nil address.
func TestAllocate_UnsatisfiableFails(t *testing.T) {
	m, err := Allocate(math.MaxInt, false, false)
	require.ErrorIs(t, err, ErrNoMemory)
	assert.Equal(t, StatusNoMemory, m.Status())
	assert.Zero(t, m.Addr())
}

// TestAllocate_HugeFlagSelection tests that exact huge-page multiples
// record the huge-page strategy and other sizes do not.
func TestAllocate_HugeFlagSelection(t *testing.T) {
	if !vmem.CanAttemptHuge() {
		t.Skip("platform cannot attempt huge pages")
	}

	m, err := Allocate(2*twoMegabytes, false, false)
	require.NoError(t, err)
	assert.Equal(t, StrategyHugePage, m.Strategy(), "4 MiB should use huge pages")
	assert.NotZero(t, m.Flags()&FlagHugePages)
	require.NoError(t, m.Free())

	m, err = Allocate(twoMegabytes/2, false, false)
	require.NoError(t, err)
	assert.Equal(t, StrategyStandard, m.Strategy(), "1 MiB should use standard pages")
	assert.Zero(t, m.Flags()&FlagHugePages)
	require.NoError(t, m.Free())
}

// TestAllocate_SequentialFlag tests that the sequential hint is
// recorded in the handle flags.
func TestAllocate_SequentialFlag(t *testing.T) {
	m, err := Allocate(64*1024, true, false)
	require.NoError(t, err)
	assert.NotZero(t, m.Flags()&FlagSequential)
	require.NoError(t, m.Free())

	m, err = Allocate(64*1024, false, false)
	require.NoError(t, err)
	assert.Zero(t, m.Flags()&FlagSequential)
	require.NoError(t, m.Free())
}

// TestAllocate_HugeWithSequential tests that strategy and advisory
// flags combine.
func TestAllocate_HugeWithSequential(t *testing.T) {
	if !vmem.CanAttemptHuge() {
		t.Skip("platform cannot attempt huge pages")
	}
	m, err := Allocate(twoMegabytes, true, true)
	require.NoError(t, err)
	assert.NotZero(t, m.Flags()&FlagHugePages)
	assert.NotZero(t, m.Flags()&FlagSequential)
	require.NoError(t, m.Free())
}
