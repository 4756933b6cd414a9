package guest

import (
	"go.uber.org/zap"

	"github.com/wippyai/fakeutf8"
	"github.com/wippyai/fakeutf8/errors"
)

const (
	// arenaBase keeps offset 0 free so a zero pointer never names a carrier.
	arenaBase = 16
	pageSize  = 64 << 10
)

// Allocation records one region handed out by an Arena.
type Allocation struct {
	Ptr   uint32
	Size  uint32
	Align uint32
}

// Arena is a bump allocator over [base, limit) of guest memory.
// An arena created with NewMemoryArena grows the memory when it runs out.
type Arena struct {
	sizer       fakeutf8.MemorySizer
	grower      fakeutf8.MemoryGrower
	allocations []Allocation
	base        uint32
	top         uint32
	limit       uint32
}

// NewArena creates an arena over [base, limit).
func NewArena(base, limit uint32) *Arena {
	return &Arena{
		allocations: make([]Allocation, 0, 8),
		base:        base,
		top:         base,
		limit:       limit,
	}
}

// NewMemoryArena creates an arena spanning the current size of mem. If mem
// can grow, the arena extends it on demand up to the engine's page limit.
func NewMemoryArena(mem fakeutf8.MemorySizer) *Arena {
	a := NewArena(arenaBase, mem.Size())
	if g, ok := mem.(fakeutf8.MemoryGrower); ok {
		a.sizer = mem
		a.grower = g
	}
	return a
}

func (a *Arena) Alloc(size, align uint32) (uint32, error) {
	ptr := alignTo(a.top, align)
	end, ok := safeAddU32(ptr, size)
	if ok && ptr >= a.top && end > a.limit {
		a.grow(end)
	}
	if !ok || ptr < a.top || end > a.limit {
		Logger().Warn("arena exhausted",
			zap.Uint32("size", size),
			zap.Uint32("align", align),
			zap.Uint32("used", a.Used()),
			zap.Uint32("limit", a.limit))
		return 0, errors.AllocationFailed(errors.PhaseGuest, size, align)
	}
	a.top = end
	a.allocations = append(a.allocations, Allocation{Ptr: ptr, Size: size, Align: align})
	return ptr, nil
}

// grow extends memory so that limit reaches at least end.
func (a *Arena) grow(end uint32) {
	if a.grower == nil {
		return
	}
	if size := a.sizer.Size(); size > a.limit {
		a.limit = size
		if end <= a.limit {
			return
		}
	}

	need := end - a.limit
	pages := need / pageSize
	if need%pageSize != 0 {
		pages++
	}
	prev, ok := a.grower.Grow(pages)
	if !ok {
		Logger().Debug("guest memory grow refused", zap.Uint32("pages", pages))
		return
	}
	a.limit = a.sizer.Size()
	Logger().Debug("guest memory grown",
		zap.Uint32("from_pages", prev),
		zap.Uint32("pages", pages),
		zap.Uint32("limit", a.limit))
}

// Free releases ptr if it is the most recent allocation.
func (a *Arena) Free(ptr, size, align uint32) {
	n := len(a.allocations)
	if n == 0 || a.allocations[n-1].Ptr != ptr {
		Logger().Debug("arena free deferred to reset", zap.Uint32("ptr", ptr), zap.Uint32("size", size))
		return
	}
	a.allocations = a.allocations[:n-1]
	a.top = ptr
}

// Reset releases every allocation.
func (a *Arena) Reset() {
	a.allocations = a.allocations[:0]
	a.top = a.base
}

func (a *Arena) Count() int {
	return len(a.allocations)
}

// Used is the number of bytes between base and the next free offset.
func (a *Arena) Used() uint32 {
	return a.top - a.base
}

var _ fakeutf8.Allocator = (*Arena)(nil)
