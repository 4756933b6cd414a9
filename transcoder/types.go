package transcoder

import (
	"bytes"
	"slices"
	"strings"
	"unicode/utf16"
)

// HostString is a host-runtime string: UTF-16 code units.
type HostString []uint16

// FromString converts a Go string to host units.
func FromString(s string) HostString {
	return HostString(utf16.Encode([]rune(s)))
}

// String returns the Go representation of s.
// Unpaired surrogates become U+FFFD.
func (s HostString) String() string {
	return string(utf16.Decode(s))
}

func (s HostString) Equal(o HostString) bool {
	return slices.Equal(s, o)
}

// Carrier holds the UTF-8 bytes of a host string.
type Carrier []byte

// Units returns the carrier in its widened form, one 16-bit unit per byte.
// This is the value a byte-blind component hands back as a string.
func (c Carrier) Units() Corrupted {
	units := make(Corrupted, len(c))
	for i, b := range c {
		units[i] = uint16(b)
	}
	return units
}

// Latin1 returns the carrier as a Go string whose runes are the byte values,
// which is how the widened form prints ("foo·bar" -> "fooÂ·bar").
func (c Carrier) Latin1() string {
	var b strings.Builder
	b.Grow(2 * len(c))
	for _, u := range c.Units() {
		b.WriteRune(rune(u))
	}
	return b.String()
}

// Key returns a string usable as a map or cache key.
// Value-equal carriers have equal keys.
func (c Carrier) Key() string {
	return string(c)
}

func (c Carrier) Equal(o Carrier) bool {
	return bytes.Equal(c, o)
}

// Bytes returns a copy of the carrier's bytes.
func (c Carrier) Bytes() []byte {
	return bytes.Clone(c)
}

// Corrupted is a host string whose units are byte values: the widened form
// of a carrier after a byte-blind component treated it as characters.
type Corrupted []uint16
