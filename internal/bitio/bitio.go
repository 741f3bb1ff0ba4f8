// Package bitio provides bit-granular reading and writing over a
// byte-backed buffer. It is the leaf layer of the protocol core: it knows
// nothing about packets, opcodes, or codecs, only about bit positions and
// integer widths.
package bitio

import "errors"

// Endian selects the bit layout used by WriteUint/ReadUint for widths that
// are not a whole number of bytes.
type Endian int

const (
	// LittleEndian lays a width-N integer out as ceil(N/8) bytes, low byte
	// first; a sub-byte tail occupies the remaining low-order bits of the
	// value once the leading full bytes are peeled off.
	LittleEndian Endian = iota
	// BigEndian writes the integer as a single N-bit run, most significant
	// bit first, with no byte splitting.
	BigEndian
)

// ErrEndOfStream is returned when a read needs more bits than remain.
var ErrEndOfStream = errors.New("bitio: end of stream")

// ErrValueOutOfRange is returned when a value does not fit in the declared
// width.
var ErrValueOutOfRange = errors.New("bitio: value out of range")

// ErrInvalidWidth is returned for a width outside the supported 1..64 range
// (the protocol itself never exceeds 32, but the primitive does not assume
// that).
var ErrInvalidWidth = errors.New("bitio: invalid width")

func maskFor(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}
