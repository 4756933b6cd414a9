package guest

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/fakeutf8"
	"github.com/wippyai/fakeutf8/errors"
)

// Memory wraps wazero memory to implement fakeutf8.Memory.
// Slices returned by Read alias guest memory and are only valid until the
// guest next runs or the memory grows.
type Memory struct {
	mem api.Memory
}

// NewMemory wraps an api.Memory.
func NewMemory(mem api.Memory) *Memory {
	return &Memory{mem: mem}
}

func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseGuest, offset, length, m.Size())
	}
	return data, nil
}

func (m *Memory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errors.OutOfBounds(errors.PhaseGuest, offset, uint32(len(data)), m.Size())
	}
	return nil
}

func (m *Memory) ReadU16(offset uint32) (uint16, error) {
	val, ok := m.mem.ReadUint16Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseGuest, offset, 2, m.Size())
	}
	return val, nil
}

func (m *Memory) WriteU16(offset uint32, value uint16) error {
	if !m.mem.WriteUint16Le(offset, value) {
		return errors.OutOfBounds(errors.PhaseGuest, offset, 2, m.Size())
	}
	return nil
}

func (m *Memory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}

// Grow extends memory by deltaPages. It fails past the module maximum or the
// engine's MemoryLimitPages. Slices from earlier Reads must not be used after
// a successful Grow.
func (m *Memory) Grow(deltaPages uint32) (uint32, bool) {
	if m.mem == nil {
		return 0, false
	}
	return m.mem.Grow(deltaPages)
}

// Compile-time check that Memory implements fakeutf8.Memory, MemorySizer and MemoryGrower
var _ fakeutf8.Memory = (*Memory)(nil)
var _ fakeutf8.MemorySizer = (*Memory)(nil)
var _ fakeutf8.MemoryGrower = (*Memory)(nil)
