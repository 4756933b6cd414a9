// Package transcoder converts between host strings and "fake UTF-8" byte carriers.
//
// A host runtime stores strings as UTF-16 code units. A component compiled from
// another language sees strings as byte arrays and interprets them as UTF-8.
// When such bytes come back and are exposed as host strings, every UTF-8 byte
// lands in its own 16-bit unit and non-ASCII text is corrupted. This package
// produces and reverses exactly that pattern:
//
//	┌────────────┐  Widen   ┌─────────┐   byte-blind    ┌───────────┐
//	│ HostString │ ───────→ │ Carrier │ ──────────────→ │ Corrupted │
//	└────────────┘          └─────────┘   component     └───────────┘
//	       ↑        Narrow       │                            │
//	       └─────────────────────┘←──────── Repair ───────────┘
//
// # Types
//
//	HostString  - UTF-16 code units, surrogate pairs above the BMP
//	Carrier     - the UTF-8 bytes of a HostString
//	Corrupted   - 16-bit units, each holding one byte value
//
// The three are distinct named types so that a carrier cannot be handed to a
// function expecting a host string, or widened twice, without an explicit
// conversion.
//
// # Example
//
//	c := transcoder.WidenString("foo·bar")
//	// c.Units() = [102 111 111 194 183 98 97 114]
//
//	s, err := transcoder.Repair(transcoder.Corrupted{0xC2, 0xB7})
//	// s.String() = "·"
//
// # Repair and Narrow
//
// Repair reinterprets each unit as a byte and then decodes exactly as Narrow
// does; the two share one decode path. Units above 0xFF are truncated to their
// low byte unless WithStrictUnits is set, in which case they are rejected.
//
// # Codec
//
// All UTF-8 work is delegated to a codec.Codec passed with WithCodec. The
// default is codec.Text.
//
// # Thread Safety
//
// A Transcoder is immutable after New and safe for concurrent use. The
// package-level functions share one Transcoder built on first use.
//
// # Error Handling
//
// Narrow, Repair and RepairString fail only with a DecodeError from the errors
// package:
//
//	[narrow] invalid_utf8 at offset 0: malformed UTF-8 byte sequence: 80 (caused by: ...)
//	[repair] unit_range at offset 3: unit 0x0142 exceeds byte range
//
// Widen never fails.
package transcoder
