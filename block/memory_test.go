package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemory_FreeRoundTrip tests that a valid handle frees exactly once
// and is consumed by the release.
func TestMemory_FreeRoundTrip(t *testing.T) {
	m, err := Allocate(128*1024, false, false)
	require.NoError(t, err)
	require.Equal(t, StatusOK, m.Status())

	require.NoError(t, m.Free(), "first Free should succeed")

	assert.NotEqual(t, StatusOK, m.Status(), "consumed handle should be invalid")
	assert.Zero(t, m.Addr())
	assert.True(t, m.IsEmpty())
}

// TestMemory_FreeTwiceIsNoOp tests the documented double-free policy
// for the same handle pointer: the second Free is a no-op.
func TestMemory_FreeTwiceIsNoOp(t *testing.T) {
	m, err := Allocate(64*1024, false, false)
	require.NoError(t, err)

	require.NoError(t, m.Free())
	require.NoError(t, m.Free(), "second Free through the same pointer should be a no-op")
}

// TestMemory_FreeInvalidIsNoOp tests that freeing a failed allocation
// or the zero value is safe.
func TestMemory_FreeInvalidIsNoOp(t *testing.T) {
	m, err := Allocate(0, false, false)
	require.Error(t, err)
	require.NoError(t, m.Free(), "freeing a failed handle should be a no-op")

	var zero Memory
	require.NoError(t, zero.Free(), "freeing the zero value should be a no-op")

	var nilHandle *Memory
	require.NoError(t, nilHandle.Free(), "freeing a nil handle should be a no-op")
}

// TestMemory_Accessors tests the handle accessors on a live handle.
func TestMemory_Accessors(t *testing.T) {
	m, err := Allocate(4096, true, true)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, m.Free())
	}()

	assert.Equal(t, StatusOK, m.Status())
	assert.False(t, m.IsEmpty())
	assert.Equal(t, m.Len(), len(m.Bytes()))
	assert.NotZero(t, m.Addr())
	assert.Equal(t, strategyOf(m.Flags()), m.Strategy())
}

// TestStrategy_FlagsRoundTrip tests the enumerated strategy against its
// packed form.
func TestStrategy_FlagsRoundTrip(t *testing.T) {
	assert.Equal(t, StrategyStandard, strategyOf(StrategyStandard.flags()))
	assert.Equal(t, StrategyHugePage, strategyOf(StrategyHugePage.flags()))
	assert.Equal(t, StrategyHugePage, strategyOf(FlagHugePages|FlagSequential))
	assert.Equal(t, StrategyStandard, strategyOf(FlagSequential))
}
