package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates which operation produced the error
type Phase string

const (
	PhaseWiden  Phase = "widen"  // host string to carrier
	PhaseNarrow Phase = "narrow" // carrier to host string
	PhaseRepair Phase = "repair" // corrupted string to host string
	PhaseGuest  Phase = "guest"  // guest memory and instance operations
	PhaseConfig Phase = "config" // option and flag handling
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindUnitRange      Kind = "unit_range"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindAllocation     Kind = "allocation"
	KindInvalidInput   Kind = "invalid_input"
	KindInstantiation  Kind = "instantiation"
	KindTrap           Kind = "trap"
	KindNotFound       Kind = "not_found"
	KindNotInitialized Kind = "not_initialized"
)

// NoOffset marks an error that is not tied to a position in the input.
const NoOffset = -1

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Offset sets the byte or unit offset the error refers to
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Decode creates the malformed UTF-8 error raised by narrow and repair.
// data is the byte sequence that failed to decode; at most 32 bytes around
// the offset are kept in the detail.
func Decode(phase Phase, offset int, data []byte, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Offset: offset,
		Detail: fmt.Sprintf("malformed UTF-8 byte sequence: %x", preview(data, offset)),
		Cause:  cause,
	}
}

// UnitRange creates an error for a corrupted-string unit that does not hold a byte value
func UnitRange(phase Phase, offset int, unit uint16) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnitRange,
		Offset: offset,
		Value:  unit,
		Detail: fmt.Sprintf("unit 0x%04x exceeds byte range", unit),
	}
}

// IsDecode reports whether err is a decode failure from narrow or repair.
func IsDecode(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == KindInvalidUTF8 || e.Kind == KindUnitRange
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Offset: NoOffset,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// OutOfBounds creates an out of bounds error for a memory access
func OutOfBounds(phase Phase, ptr, length, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: int(ptr),
		Value:  length,
		Detail: fmt.Sprintf("access of %d bytes out of bounds (memory size %d)", length, size),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Offset: NoOffset,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotInitialized creates a not-initialized error for a closed engine or instance
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Offset: NoOffset,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseGuest,
		Kind:   KindInstantiation,
		Offset: NoOffset,
		Detail: "instantiate module",
		Cause:  cause,
	}
}

// Trap creates an error for a guest function call that trapped
func Trap(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseGuest,
		Kind:   KindTrap,
		Offset: NoOffset,
		Detail: fmt.Sprintf("call %q", name),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}

func preview(data []byte, offset int) []byte {
	const window = 32
	if len(data) <= window {
		return data
	}
	start := offset - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(data) {
		end = len(data)
		start = end - window
	}
	return data[start:end]
}
