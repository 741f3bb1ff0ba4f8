package codec

import "github.com/duskwire/pscodec/internal/bitio"

// VariableSizeBytes decodes a byte count with sizeCodec, then decodes inner
// over exactly that many bytes of input. Encode buffers the inner encoding,
// measures its byte length, and prefixes that length with sizeCodec. A
// mismatch between the declared size and the inner codec's actual
// consumption is a SizeMismatch error, never silently tolerated.
func VariableSizeBytes[T any](sizeCodec Codec[uint64], inner Codec[T]) Codec[T] {
	return New(
		Unbounded(),
		func(r *bitio.Reader) (T, error) {
			var zero T
			off := r.Offset()
			size, err := sizeCodec.Decode(r)
			if err != nil {
				return zero, err
			}
			region, err := r.ReadBytes(int(size))
			if err != nil {
				return zero, Wrap(EndOfStream, off, err, "reading %d-byte region", size)
			}
			sub := bitio.NewReader(region)
			v, err := inner.decode(sub)
			if err != nil {
				return zero, err
			}
			if sub.Remaining() != 0 {
				return zero, NewError(SizeMismatch, off, "declared size %d bytes but inner codec left %d bits unconsumed", size, sub.Remaining())
			}
			return v, nil
		},
		func(w *bitio.Writer, v T) error {
			buf := bitio.NewWriter()
			if err := inner.encode(buf, v); err != nil {
				return err
			}
			payload := buf.Bytes()
			if err := sizeCodec.EncodeInto(w, uint64(len(payload))); err != nil {
				return err
			}
			return w.WriteBytes(payload)
		},
	)
}

// VariableSizeBytesAligned is VariableSizeBytes with padBits zero bits
// inserted between the size prefix and the character data: the client
// re-aligns to a byte boundary there when the size prefix itself finished
// on a non-byte boundary. padBits must be in [0,7].
func VariableSizeBytesAligned[T any](padBits int, sizeCodec Codec[uint64], inner Codec[T]) Codec[T] {
	pad := Ignore(padBits)
	return New(
		Unbounded(),
		func(r *bitio.Reader) (T, error) {
			var zero T
			off := r.Offset()
			size, err := sizeCodec.Decode(r)
			if err != nil {
				return zero, err
			}
			if _, err := pad.Decode(r); err != nil {
				return zero, err
			}
			region, err := r.ReadBytes(int(size))
			if err != nil {
				return zero, Wrap(EndOfStream, off, err, "reading %d-byte region", size)
			}
			sub := bitio.NewReader(region)
			v, err := inner.decode(sub)
			if err != nil {
				return zero, err
			}
			if sub.Remaining() != 0 {
				return zero, NewError(SizeMismatch, off, "declared size %d bytes but inner codec left %d bits unconsumed", size, sub.Remaining())
			}
			return v, nil
		},
		func(w *bitio.Writer, v T) error {
			buf := bitio.NewWriter()
			if err := inner.encode(buf, v); err != nil {
				return err
			}
			payload := buf.Bytes()
			if err := sizeCodec.EncodeInto(w, uint64(len(payload))); err != nil {
				return err
			}
			if err := pad.EncodeInto(w, struct{}{}); err != nil {
				return err
			}
			return w.WriteBytes(payload)
		},
	)
}
