// Package guest runs the byte-array side of the string boundary as WebAssembly.
//
// A component compiled from another language sees strings as byte arrays. This
// package models it as a core WebAssembly module executed with wazero and
// moves carriers in and out of its linear memory:
//
//	HostString ─Widen→ Carrier ─Lower→ [guest memory] ─guest code→ [guest memory] ─Lift→ Repair → HostString
//
// # Layouts
//
// A carrier can sit in guest memory in either of its two physical forms:
//
//	LayoutBytes   one byte per carrier byte
//	LayoutUnits   one little-endian 16-bit unit per carrier byte
//
// LayoutUnits is what a guest receives when the host passes the carrier as an
// ordinary host string; Lift on it goes through transcoder.Repair.
//
// # Allocation
//
// Guests built for this boundary rarely export an allocator, so Arena hands out
// regions of guest memory from the host side. When a request does not fit, the
// arena grows the memory by whole pages, up to Config.MemoryLimitPages. Freeing
// the most recent allocation rolls the arena back; anything else waits for Reset.
//
// # BytesModule
//
// BytesModule is a minimal core module exporting its memory and
// copy(dst, src, n), a single memory.copy. Concatenating carriers with it is
// exactly the byte-blind string handling that produces corrupted strings.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Instance, Arena and Bridge are NOT
// thread-safe and should be used by a single goroutine.
package guest
