package transcoder

import (
	"go.uber.org/zap"

	"github.com/wippyai/fakeutf8/codec"
)

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithCodec sets the UTF-8 codec capability. A nil codec keeps the default.
func WithCodec(c codec.Codec) Option {
	return func(t *Transcoder) {
		if c != nil {
			t.codec = c
		}
	}
}

// WithStrictUnits makes Repair reject units above 0xFF instead of truncating them.
func WithStrictUnits(strict bool) Option {
	return func(t *Transcoder) {
		t.strict = strict
	}
}

// WithLogger sets the logger used for decode diagnostics.
// Without it the package logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transcoder) {
		t.log = l
	}
}
