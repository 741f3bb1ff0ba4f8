// Package codec implements the composable decoder/encoder combinator
// layer: Codec[T] values that pair a decode function and an encode
// function, plus the standard combinators (narrowing, either, variable
// size containers, ignore/pad, discriminated dispatch) described by the
// protocol's codec layer. Codecs are immutable once constructed and safe
// to share across goroutines.
//
// The codec layer performs no logging of its own: decode failures are
// reported to the caller as *Error values, never written to a log.
package codec

import "github.com/duskwire/pscodec/internal/bitio"

// Bound describes a codec's size in bits. Exact codecs have Lower==Upper.
// Unbounded codecs (e.g. a narrowed string) set Upper to -1.
type Bound struct {
	Lower int
	Upper int
}

// Unbounded reports a Bound with no fixed size, used for anything whose
// length depends on the decoded value (e.g. strings).
func Unbounded() Bound {
	return Bound{Lower: 0, Upper: -1}
}

// Exact returns a Bound whose lower and upper bit counts are both n.
func Exact(n int) Bound {
	return Bound{Lower: n, Upper: n}
}

// IsExact reports whether the bound names a single fixed bit count.
func (b Bound) IsExact() bool {
	return b.Upper >= 0 && b.Lower == b.Upper
}

// Codec pairs a decoder and an encoder for values of type T, plus the
// size bound the combinator layer uses for sanity checks and to drive
// size-prefixed containers.
type Codec[T any] struct {
	Size   Bound
	decode func(r *bitio.Reader) (T, error)
	encode func(w *bitio.Writer, v T) error
}

// New constructs a Codec from raw decode/encode functions.
func New[T any](size Bound, decode func(r *bitio.Reader) (T, error), encode func(w *bitio.Writer, v T) error) Codec[T] {
	return Codec[T]{Size: size, decode: decode, encode: encode}
}

// Decode runs the codec's decoder over r.
func (c Codec[T]) Decode(r *bitio.Reader) (T, error) {
	return c.decode(r)
}

// Encode runs the codec's encoder, returning the encoded bytes.
func (c Codec[T]) Encode(v T) ([]byte, error) {
	w := bitio.NewWriter()
	if err := c.encode(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeInto runs the codec's encoder against an existing writer, for
// composing several codecs into one outer encoding without an
// intermediate byte buffer per field.
func (c Codec[T]) EncodeInto(w *bitio.Writer, v T) error {
	return c.encode(w, v)
}
