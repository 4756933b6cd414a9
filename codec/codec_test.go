package codec

import (
	"bytes"
	"errors"
	"slices"
	"testing"
	"unicode/utf16"

	fuerrors "github.com/wippyai/fakeutf8/errors"
)

func allCodecs() []Codec {
	return []Codec{Text(), Std()}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []byte
	}{
		{"empty", nil, []byte{}},
		{"ascii", []uint16{'H', 'i'}, []byte("Hi")},
		{"middle dot", utf16.Encode([]rune("foo·bar")), []byte{102, 111, 111, 194, 183, 98, 97, 114}},
		{"three bytes", []uint16{0x20AC}, []byte{0xE2, 0x82, 0xAC}},
		{"surrogate pair", []uint16{0xD83D, 0xDE00}, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{"lone high surrogate", []uint16{'a', 0xD83D}, []byte{'a', 0xEF, 0xBF, 0xBD}},
		{"lone low surrogate", []uint16{0xDE00, 'b'}, []byte{0xEF, 0xBF, 0xBD, 'b'}},
		{"leading BOM kept", []uint16{0xFEFF, 'x'}, []byte{0xEF, 0xBB, 0xBF, 'x'}},
	}

	for _, c := range allCodecs() {
		for _, tt := range tests {
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				got := c.Encode(tt.units)
				if got == nil {
					t.Fatal("Encode returned nil slice")
				}
				if !bytes.Equal(got, tt.want) {
					t.Errorf("Encode(%v) = %x, want %x", tt.units, got, tt.want)
				}
			})
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []uint16
	}{
		{"empty", []byte{}, []uint16{}},
		{"ascii", []byte("Hello, world!"), utf16.Encode([]rune("Hello, world!"))},
		{"middle dot", []byte{0xC2, 0xB7}, []uint16{0x00B7}},
		{"arabic", []byte{0xD8, 0xAC, 0xD9, 0x85, 0xD9, 0x84}, utf16.Encode([]rune("جمل"))},
		{"astral", []byte{0xF0, 0x9F, 0x98, 0x80}, []uint16{0xD83D, 0xDE00}},
		{"encoded replacement char", []byte{0xEF, 0xBF, 0xBD}, []uint16{0xFFFD}},
		{"leading BOM kept", []byte{0xEF, 0xBB, 0xBF, 'x'}, []uint16{0xFEFF, 'x'}},
	}

	for _, c := range allCodecs() {
		for _, tt := range tests {
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				got, err := c.Decode(tt.input)
				if err != nil {
					t.Fatalf("Decode(%x) error: %v", tt.input, err)
				}
				if !slices.Equal(got, tt.want) {
					t.Errorf("Decode(%x) = %v, want %v", tt.input, got, tt.want)
				}
			})
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		offset    int
		truncated bool
	}{
		{"lone continuation", []byte{0x80}, 0, false},
		{"continuation after ascii", []byte{'a', 'b', 0xBF}, 2, false},
		{"overlong slash", []byte{0xC0, 0xAF}, 0, false},
		{"overlong three byte", []byte{0xE0, 0x80, 0xAF}, 0, false},
		{"surrogate in bytes", []byte{'x', 0xED, 0xA0, 0x80}, 1, false},
		{"byte above F4", []byte{0xF5, 0x80, 0x80, 0x80}, 0, false},
		{"byte FF", []byte{'o', 'k', 0xFF}, 2, false},
		{"truncated two byte", []byte{'f', 'o', 'o', 0xC2}, 3, true},
		{"truncated four byte", []byte{0xF0, 0x9F, 0x98}, 0, true},
		{"bad continuation", []byte{0xC2, 'A'}, 0, false},
	}

	for _, c := range allCodecs() {
		for _, tt := range tests {
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				_, err := c.Decode(tt.input)
				if err == nil {
					t.Fatalf("Decode(%x) should fail", tt.input)
				}
				var me *MalformedError
				if !errors.As(err, &me) {
					t.Fatalf("error %T is not *MalformedError", err)
				}
				if me.Offset != tt.offset {
					t.Errorf("Offset = %d, want %d", me.Offset, tt.offset)
				}
				if me.Truncated != tt.truncated {
					t.Errorf("Truncated = %v, want %v", me.Truncated, tt.truncated)
				}
				if me.Byte != tt.input[tt.offset] {
					t.Errorf("Byte = %#x, want %#x", me.Byte, tt.input[tt.offset])
				}
			})
		}
	}
}

func TestCodecsAgree(t *testing.T) {
	inputs := [][]uint16{
		utf16.Encode([]rune("Grüße, 世界 🌍")),
		{0xD800, 0xD800, 0xDC00},
		{0xDFFF},
		{0, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF},
	}
	text, std := Text(), Std()
	for _, in := range inputs {
		a, b := text.Encode(in), std.Encode(in)
		if !bytes.Equal(a, b) {
			t.Errorf("Encode(%v): text=%x std=%x", in, a, b)
		}
		ua, errA := text.Decode(a)
		ub, errB := std.Decode(b)
		if errA != nil || errB != nil {
			t.Fatalf("Decode errors: %v, %v", errA, errB)
		}
		if !slices.Equal(ua, ub) {
			t.Errorf("Decode(%x): text=%v std=%v", a, ua, ub)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]byte("plain")); err != nil {
		t.Errorf("Validate(plain) = %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Errorf("Validate(nil) = %v", err)
	}
	err := Validate([]byte{0xE2, 0x82})
	var me *MalformedError
	if !errors.As(err, &me) || !me.Truncated {
		t.Errorf("Validate(E2 82) = %v, want truncated", err)
	}
	if msg := err.Error(); msg != "truncated UTF-8 sequence starting with 0xe2 at offset 0" {
		t.Errorf("Error() = %q", msg)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if c.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, c.Name())
		}
	}

	_, err := Lookup("utf-7")
	if !errors.Is(err, &fuerrors.Error{Phase: fuerrors.PhaseConfig, Kind: fuerrors.KindInvalidInput}) {
		t.Errorf("Lookup(utf-7) error = %v", err)
	}

	if Default().Name() != "text" {
		t.Errorf("Default() = %q, want text", Default().Name())
	}
}

func BenchmarkEncode(b *testing.B) {
	units := utf16.Encode([]rune("The quick brown fox · jumps over the lazy dog 🦊"))
	for _, c := range allCodecs() {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = c.Encode(units)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte("The quick brown fox · jumps over the lazy dog 🦊")
	for _, c := range allCodecs() {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = c.Decode(data)
			}
		})
	}
}
