package guest

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/fakeutf8"
	"github.com/wippyai/fakeutf8/errors"
	"github.com/wippyai/fakeutf8/transcoder"
)

// Caller invokes exported guest functions. *Instance implements it.
type Caller interface {
	Call(ctx context.Context, name string, params ...uint64) ([]uint64, error)
}

// Bridge moves host strings across guest memory as carriers.
type Bridge struct {
	mem    fakeutf8.Memory
	alloc  fakeutf8.Allocator
	tc     *transcoder.Transcoder
	layout Layout
}

// NewBridge creates a bridge. A nil transcoder uses transcoder.Default.
func NewBridge(mem fakeutf8.Memory, alloc fakeutf8.Allocator, tc *transcoder.Transcoder, layout Layout) *Bridge {
	if tc == nil {
		tc = transcoder.Default()
	}
	return &Bridge{
		mem:    mem,
		alloc:  alloc,
		tc:     tc,
		layout: layout,
	}
}

func (b *Bridge) Layout() Layout {
	return b.layout
}

// Lower widens s and writes the carrier into guest memory.
// It returns the carrier's address and its length in carrier bytes.
func (b *Bridge) Lower(s transcoder.HostString) (ptr, n uint32, err error) {
	c := b.tc.Widen(s)
	if len(c) > MaxCarrierSize {
		return 0, 0, errors.InvalidInput(errors.PhaseGuest,
			fmt.Sprintf("carrier of %d bytes exceeds %d", len(c), MaxCarrierSize))
	}
	n = uint32(len(c))
	size, ok := safeMulU32(n, b.layout.UnitSize())
	if !ok {
		return 0, 0, errors.InvalidInput(errors.PhaseGuest, "carrier size overflows")
	}

	ptr, err = b.alloc.Alloc(size, b.layout.Align())
	if err != nil {
		return 0, 0, err
	}

	if err := b.mem.Write(ptr, b.encode(c)); err != nil {
		b.alloc.Free(ptr, size, b.layout.Align())
		return 0, 0, err
	}
	return ptr, n, nil
}

func (b *Bridge) encode(c transcoder.Carrier) []byte {
	if b.layout != LayoutUnits {
		return c
	}
	out := make([]byte, 2*len(c))
	for i, u := range c.Units() {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// Lift reads n carrier bytes at ptr and turns them back into a host string.
// Bytes are narrowed; units are repaired.
func (b *Bridge) Lift(ptr, n uint32) (transcoder.HostString, error) {
	size, ok := safeMulU32(n, b.layout.UnitSize())
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseGuest, "carrier size overflows")
	}
	data, err := b.mem.Read(ptr, size)
	if err != nil {
		return nil, err
	}

	if b.layout != LayoutUnits {
		return b.tc.Narrow(transcoder.Carrier(data))
	}

	units := make(transcoder.Corrupted, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return b.tc.Repair(units)
}

// Concat joins x and y inside the guest with BytesModule's copy export and
// returns the repaired result.
func (b *Bridge) Concat(ctx context.Context, g Caller, x, y transcoder.HostString) (transcoder.HostString, error) {
	unit, align := b.layout.UnitSize(), b.layout.Align()

	px, nx, err := b.Lower(x)
	if err != nil {
		return nil, err
	}
	defer b.alloc.Free(px, nx*unit, align)

	py, ny, err := b.Lower(y)
	if err != nil {
		return nil, err
	}
	defer b.alloc.Free(py, ny*unit, align)

	total, ok := safeAddU32(nx, ny)
	if !ok || total > MaxCarrierSize {
		return nil, errors.InvalidInput(errors.PhaseGuest, "concatenated carrier too large")
	}
	out, err := b.alloc.Alloc(total*unit, align)
	if err != nil {
		return nil, err
	}
	defer b.alloc.Free(out, total*unit, align)

	if _, err := g.Call(ctx, CopyExport, uint64(out), uint64(px), uint64(nx*unit)); err != nil {
		return nil, err
	}
	if _, err := g.Call(ctx, CopyExport, uint64(out+nx*unit), uint64(py), uint64(ny*unit)); err != nil {
		return nil, err
	}

	Logger().Debug("guest concat",
		zap.Stringer("layout", b.layout),
		zap.Uint32("left", nx),
		zap.Uint32("right", ny))

	return b.Lift(out, total)
}
