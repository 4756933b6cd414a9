// Package errors provides structured error types for fakeutf8.
//
// Errors are categorized by Phase (which operation failed) and Kind (error category).
// The Error type carries the offending byte or unit offset when one is known, a
// human-readable detail and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseNarrow, errors.KindInvalidUTF8).
//		Offset(3).
//		Detail("truncated sequence").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Decode(errors.PhaseRepair, 3, data, cause)
//	err := errors.OutOfBounds(errors.PhaseGuest, 0x10000, 8, 0x10000)
//
// A DecodeError is any *Error of kind KindInvalidUTF8 or KindUnitRange; IsDecode
// reports it regardless of phase. All errors support errors.Is/As.
package errors
