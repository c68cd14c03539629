package block

import "github.com/joshuapare/memkit/internal/vmem"

// hint describes how a request of a given size will be reserved.
type hint struct {
	// size is the request rounded up to page granularity. This is the
	// size actually reserved and the one Free releases.
	size int

	// strategy selects standard or huge-page reservation.
	strategy Strategy
}

// alignmentFor rounds numBytes up to the page size and picks the
// reservation strategy. A rounded size that is a nonzero multiple of
// the huge-page size selects huge pages when the platform can attempt
// them. numBytes must be positive and small enough that rounding cannot
// overflow; Allocate checks both.
func alignmentFor(numBytes int) hint {
	page := vmem.PageSize()
	rounded := (numBytes + page - 1) &^ (page - 1)
	h := hint{size: rounded, strategy: StrategyStandard}
	if rounded%vmem.HugePageSize == 0 && vmem.CanAttemptHuge() {
		h.strategy = StrategyHugePage
	}
	return h
}
