package codec

import (
	"errors"
	"fmt"
)

// Kind classifies a decode or encode failure, mirroring the error taxonomy
// of the wire format: every failure is one of a small closed set, never an
// opaque string.
type Kind int

const (
	// EndOfStream: fewer bits remain than the codec needs.
	EndOfStream Kind = iota
	// ConstantMismatch: a reserved/constant field held an unexpected value.
	ConstantMismatch
	// EnumOutOfRange: a numeric value does not map to any enumerator.
	EnumOutOfRange
	// ValueOutOfRange: an encoder received a value exceeding its declared width.
	ValueOutOfRange
	// SizeMismatch: a size-prefixed region's declared size disagrees with
	// the inner codec's consumption.
	SizeMismatch
	// UnknownOpcode: the dispatcher has no registration for the observed opcode.
	UnknownOpcode
	// InvalidFormat: a domain-level predicate rejected the value.
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case EndOfStream:
		return "EndOfStream"
	case ConstantMismatch:
		return "ConstantMismatch"
	case EnumOutOfRange:
		return "EnumOutOfRange"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	case SizeMismatch:
		return "SizeMismatch"
	case UnknownOpcode:
		return "UnknownOpcode"
	case InvalidFormat:
		return "InvalidFormat"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every decode/encode path in the
// codec layer. It always carries the bit offset at which the failure
// occurred, along with a human-readable message.
type Error struct {
	Kind    Kind
	Offset  int
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports a match for any *Error target of the same Kind, so
// errors.Is(err, &codec.Error{Kind: codec.EndOfStream}) matches regardless
// of offset or message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// NewError builds an Error of the given kind at the given bit offset.
func NewError(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind, preserving an underlying cause.
func Wrap(kind Kind, offset int, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// KindOf reports the Kind of err, if err is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
