package codec

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// utf16le is the in-memory shape of host units handed to x/text.
// IgnoreBOM keeps a leading U+FEFF as an ordinary character.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

type textCodec struct{}

// Text returns the codec backed by golang.org/x/text/encoding/unicode.
func Text() Codec {
	return textCodec{}
}

func (textCodec) Name() string {
	return "text"
}

func (textCodec) Encode(units []uint16) []byte {
	if len(units) == 0 {
		return []byte{}
	}
	raw := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}
	out, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		// The UTF-16 decoder substitutes U+FFFD rather than failing.
		return stdCodec{}.Encode(units)
	}
	return out
}

func (textCodec) Decode(b []byte) ([]uint16, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	raw, err := utf16le.NewEncoder().Bytes(b)
	if err != nil {
		return nil, err
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return units, nil
}
