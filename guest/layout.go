package guest

import (
	"fmt"
	"math"

	"github.com/wippyai/fakeutf8/errors"
)

// Layout selects how a carrier is stored in guest memory.
type Layout int

const (
	// LayoutBytes stores one byte per carrier byte.
	LayoutBytes Layout = iota
	// LayoutUnits stores one little-endian 16-bit unit per carrier byte.
	LayoutUnits
)

// UnitSize is the number of memory bytes per carrier byte.
func (l Layout) UnitSize() uint32 {
	if l == LayoutUnits {
		return 2
	}
	return 1
}

// Align is the required alignment of a lowered carrier.
func (l Layout) Align() uint32 {
	return l.UnitSize()
}

func (l Layout) String() string {
	switch l {
	case LayoutBytes:
		return "bytes"
	case LayoutUnits:
		return "units"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// ParseLayout resolves "bytes" or "units".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "bytes":
		return LayoutBytes, nil
	case "units":
		return LayoutUnits, nil
	}
	return 0, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown layout %q (want bytes or units)", s))
}

// MaxCarrierSize bounds a single lowered carrier.
const MaxCarrierSize = 1 << 30

func safeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func safeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

func alignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}
