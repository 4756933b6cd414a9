package transcoder

import (
	stderrors "errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/fakeutf8/codec"
	"github.com/wippyai/fakeutf8/errors"
)

// Transcoder performs Widen, Narrow and Repair against one codec.
type Transcoder struct {
	codec  codec.Codec
	log    *zap.Logger
	strict bool
}

// New creates a Transcoder. Without options it uses codec.Default and
// truncates out-of-range units in Repair.
func New(opts ...Option) *Transcoder {
	t := &Transcoder{codec: codec.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Codec returns the codec capability in use.
func (t *Transcoder) Codec() codec.Codec {
	return t.codec
}

// Strict reports whether Repair rejects units above 0xFF.
func (t *Transcoder) Strict() bool {
	return t.strict
}

// Widen returns the UTF-8 bytes of s. It never fails; unpaired surrogates are
// encoded as U+FFFD.
func (t *Transcoder) Widen(s HostString) Carrier {
	return Carrier(t.codec.Encode(s))
}

// WidenString widens a Go string.
func (t *Transcoder) WidenString(s string) Carrier {
	return t.Widen(FromString(s))
}

// Narrow decodes a carrier back into a host string.
// Narrow(Widen(s)) == s for every s without unpaired surrogates.
func (t *Transcoder) Narrow(c Carrier) (HostString, error) {
	return t.decode(errors.PhaseNarrow, c)
}

// Repair reconstructs the host string a byte-blind component meant to return.
// Each unit is read as one byte and the result is decoded as in Narrow.
func (t *Transcoder) Repair(s Corrupted) (HostString, error) {
	buf := getScratch()
	defer putScratch(buf)

	b, err := t.reinterpret(*buf, s)
	if err != nil {
		return nil, err
	}
	*buf = b
	return t.decode(errors.PhaseRepair, b)
}

// RepairString repairs mojibake held in a Go string, such as "fooÂ·bar".
// Every rune must be at most U+00FF; unlike Repair there is no truncation.
func (t *Transcoder) RepairString(s string) (string, error) {
	unit := 0
	for _, r := range s {
		if r > 0xFF {
			return "", errors.UnitRange(errors.PhaseRepair, unit, uint16(min(r, 0xFFFF)))
		}
		unit++
	}

	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", errors.Wrap(errors.PhaseRepair, errors.KindInvalidInput, err, "latin-1 encode")
	}
	host, err := t.decode(errors.PhaseRepair, []byte(b))
	if err != nil {
		return "", err
	}
	return host.String(), nil
}

func (t *Transcoder) reinterpret(dst []byte, s Corrupted) ([]byte, error) {
	for i, u := range s {
		if u > 0xFF && t.strict {
			return nil, errors.UnitRange(errors.PhaseRepair, i, u)
		}
		dst = append(dst, byte(u))
	}
	return dst, nil
}

func (t *Transcoder) decode(phase errors.Phase, b []byte) (HostString, error) {
	units, err := t.codec.Decode(b)
	if err != nil {
		offset := errors.NoOffset
		var me *codec.MalformedError
		if stderrors.As(err, &me) {
			offset = me.Offset
		}
		t.logger().Debug("decode failed",
			zap.String("phase", string(phase)),
			zap.String("codec", t.codec.Name()),
			zap.Int("offset", offset),
			zap.Int("length", len(b)))
		return nil, errors.Decode(phase, offset, b, err)
	}
	return HostString(units), nil
}

func (t *Transcoder) logger() *zap.Logger {
	if t.log != nil {
		return t.log
	}
	return Logger()
}

var (
	defaultTranscoder *Transcoder
	defaultOnce       sync.Once
)

// Default returns the Transcoder behind the package-level functions.
func Default() *Transcoder {
	defaultOnce.Do(func() {
		defaultTranscoder = New()
	})
	return defaultTranscoder
}

// Widen widens s with the default Transcoder.
func Widen(s HostString) Carrier {
	return Default().Widen(s)
}

// WidenString widens a Go string with the default Transcoder.
func WidenString(s string) Carrier {
	return Default().WidenString(s)
}

// Narrow narrows c with the default Transcoder.
func Narrow(c Carrier) (HostString, error) {
	return Default().Narrow(c)
}

// Repair repairs s with the default Transcoder.
func Repair(s Corrupted) (HostString, error) {
	return Default().Repair(s)
}

// RepairString repairs a mojibake Go string with the default Transcoder.
func RepairString(s string) (string, error) {
	return Default().RepairString(s)
}
