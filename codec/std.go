package codec

import (
	"unicode/utf16"
	"unicode/utf8"
)

type stdCodec struct{}

// Std returns the codec built on unicode/utf8 and unicode/utf16.
func Std() Codec {
	return stdCodec{}
}

func (stdCodec) Name() string {
	return "std"
}

func (stdCodec) Encode(units []uint16) []byte {
	out := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u < utf8.RuneSelf {
			out = append(out, byte(u))
			continue
		}
		r := rune(u)
		if utf16.IsSurrogate(r) {
			r = utf8.RuneError
			if i+1 < len(units) {
				if pair := utf16.DecodeRune(rune(u), rune(units[i+1])); pair != utf8.RuneError {
					r = pair
					i++
				}
			}
		}
		out = utf8.AppendRune(out, r)
	}
	return out
}

func (stdCodec) Decode(b []byte) ([]uint16, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		if c := b[i]; c < utf8.RuneSelf {
			units = append(units, uint16(c))
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units, nil
}
