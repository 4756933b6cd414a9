// Package fakeutf8 converts between host strings made of 16-bit code units
// and the "fake UTF-8" carriers a byte-oriented component works with.
//
// A host runtime stores strings as UTF-16. A component compiled from a
// language whose strings are byte arrays reads the same memory as UTF-8.
// Handing a host string to such a component therefore means widening it to
// its UTF-8 bytes, and taking a string back means narrowing those bytes.
// When a byte-blind component returns bytes that were widened one per unit,
// the result can be repaired.
//
// # Architecture Overview
//
//	fakeutf8/            Root package with the Memory and Allocator interfaces
//	├── transcoder/      Widen, Narrow and Repair over a pluggable codec
//	├── codec/           UTF-8 <-> UTF-16 codecs (x/text and unicode/utf16)
//	├── guest/           wazero guest memory, arena allocator and carrier bridge
//	├── errors/          Structured error types with phase and kind
//	└── cmd/fakeutf8/    Command line interface
//
// # Quick Start
//
//	c := transcoder.WidenString("foo·bar")
//	// c.Units() == [102 111 111 194 183 98 97 114]
//
//	s, err := transcoder.Narrow(c)
//	// s.String() == "foo·bar"
//
//	r, err := transcoder.Repair(transcoder.Corrupted{0xC2, 0xB7})
//	// r.String() == "·"
//
// # Concurrency
//
// A Transcoder is immutable after construction and safe for concurrent use.
// Guest instances and arenas are not; use one per goroutine.
package fakeutf8
