package codec

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/wippyai/fakeutf8/errors"
)

// Codec is the UTF-8 encode/decode capability.
type Codec interface {
	// Name identifies the codec in logs and configuration.
	Name() string
	// Encode returns the UTF-8 encoding of a UTF-16 unit sequence.
	Encode(units []uint16) []byte
	// Decode returns the UTF-16 units of well-formed UTF-8 input.
	Decode(b []byte) ([]uint16, error)
}

// MalformedError describes the first ill-formed position in a UTF-8 sequence.
type MalformedError struct {
	Offset    int
	Byte      byte
	Truncated bool
}

func (e *MalformedError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("truncated UTF-8 sequence starting with 0x%02x at offset %d", e.Byte, e.Offset)
	}
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// Validate scans b and returns a *MalformedError for the first ill-formed
// sequence, or nil when b is valid UTF-8.
func Validate(b []byte) error {
	for i := 0; i < len(b); {
		c := b[i]
		if c < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &MalformedError{
				Offset:    i,
				Byte:      c,
				Truncated: !utf8.FullRune(b[i:]),
			}
		}
		i += size
	}
	return nil
}

var registry = map[string]func() Codec{
	"text": Text,
	"std":  Std,
}

// Default returns the codec used when none is configured.
func Default() Codec {
	return Text()
}

// Lookup resolves a codec by name.
func Lookup(name string) (Codec, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("unknown codec %q (available: %v)", name, Names()))
	}
	return ctor(), nil
}

// Names lists registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
