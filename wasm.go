package fakeutf8

// Memory is a linear memory the byte-array side reads carriers from.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU16(offset uint32) (uint16, error)
	WriteU16(offset uint32, value uint16) error
}

// MemorySizer provides the current size of linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// MemoryGrower extends linear memory by whole 64KiB pages.
type MemoryGrower interface {
	Grow(deltaPages uint32) (previousPages uint32, ok bool)
}

// Allocator hands out regions of linear memory for lowered carriers
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}
