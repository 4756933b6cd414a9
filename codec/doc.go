// Package codec provides the UTF-8 codec capability the transcoder is built on.
//
// A Codec converts between host strings, held as UTF-16 code units, and UTF-8
// bytes:
//
//	Encode(units) -> bytes   total; unpaired surrogates become U+FFFD
//	Decode(bytes) -> units   fails with *MalformedError on ill-formed UTF-8
//
// Two implementations are provided. Text is backed by golang.org/x/text and is
// the default. Std uses unicode/utf8 and unicode/utf16 directly. Both are
// stateless and safe for concurrent use; the transcoder tests assert that they
// agree on every input.
//
// Decode is strict. It rejects lone continuation bytes, overlong forms,
// surrogate code points written as bytes, bytes 0xF5-0xFF and sequences cut
// short by the end of input, and reports the offset of the first bad byte.
package codec
