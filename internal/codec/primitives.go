package codec

import "github.com/duskwire/pscodec/internal/bitio"

// Uint builds a Codec for an unsigned integer of the given bit width and
// endianness.
func Uint(width int, endian bitio.Endian) Codec[uint64] {
	return New(
		Exact(width),
		func(r *bitio.Reader) (uint64, error) {
			off := r.Offset()
			v, err := r.ReadUint(width, endian)
			if err != nil {
				return 0, Wrap(EndOfStream, off, err, "reading %d-bit uint", width)
			}
			return v, nil
		},
		func(w *bitio.Writer, v uint64) error {
			off := w.Len()
			if err := w.WriteUint(v, width, endian); err != nil {
				return Wrap(ValueOutOfRange, off, err, "writing %d-bit uint value %d", width, v)
			}
			return nil
		},
	)
}

// Bool builds a Codec for a single bit.
func Bool() Codec[bool] {
	return New(
		Exact(1),
		func(r *bitio.Reader) (bool, error) {
			off := r.Offset()
			v, err := r.ReadBool()
			if err != nil {
				return false, Wrap(EndOfStream, off, err, "reading bool")
			}
			return v, nil
		},
		func(w *bitio.Writer, v bool) error {
			return w.WriteBool(v)
		},
	)
}

// Const builds a zero-width-value Codec over a constant bit pattern:
// decode verifies the pattern is present and returns nothing meaningful,
// encode always emits it. Used for the reserved/constant fields that
// appear throughout the wire format (packet flags, constructor payload
// reserved fields).
func Const(value uint64, width int) Codec[struct{}] {
	return New(
		Exact(width),
		func(r *bitio.Reader) (struct{}, error) {
			off := r.Offset()
			got, err := r.ReadUint(width, bitio.BigEndian)
			if err != nil {
				return struct{}{}, Wrap(EndOfStream, off, err, "reading constant")
			}
			if got != value {
				return struct{}{}, NewError(ConstantMismatch, off, "expected constant %#x (width %d), got %#x", value, width, got)
			}
			return struct{}{}, nil
		},
		func(w *bitio.Writer, _ struct{}) error {
			return w.WriteBits(value, width)
		},
	)
}

// Ignore builds a Codec over n reserved bits: encode emits zeros, decode
// skips them without inspecting their value.
func Ignore(n int) Codec[struct{}] {
	return New(
		Exact(n),
		func(r *bitio.Reader) (struct{}, error) {
			off := r.Offset()
			if err := r.Skip(n); err != nil {
				return struct{}{}, Wrap(EndOfStream, off, err, "skipping %d ignored bits", n)
			}
			return struct{}{}, nil
		},
		func(w *bitio.Writer, _ struct{}) error {
			return w.WriteBits(0, n)
		},
	)
}
