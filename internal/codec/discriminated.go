package codec

import "github.com/duskwire/pscodec/internal/bitio"

// Discriminated dispatches on a tag value read by tagCodec, selecting a
// per-tag branch codec. tagOf recovers the tag from an already-built value
// so Encode can pick the matching branch and emit its tag. Unknown tags on
// decode produce an UnknownOpcode error; unmapped values on encode produce
// an InvalidFormat error.
type Discriminated[TTag comparable, V any] struct {
	Tag      Codec[TTag]
	Branches map[TTag]Codec[V]
	TagOf    func(V) (TTag, bool)
}

// Codec builds the combined Codec[V] for this dispatch table.
func (d Discriminated[TTag, V]) Codec() Codec[V] {
	return New(
		Unbounded(),
		func(r *bitio.Reader) (V, error) {
			var zero V
			off := r.Offset()
			tag, err := d.Tag.Decode(r)
			if err != nil {
				return zero, err
			}
			branch, ok := d.Branches[tag]
			if !ok {
				return zero, NewError(UnknownOpcode, off, "unknown tag %v", tag)
			}
			return branch.Decode(r)
		},
		func(w *bitio.Writer, v V) error {
			off := w.Len()
			tag, ok := d.TagOf(v)
			if !ok {
				return NewError(InvalidFormat, off, "value has no discriminator tag")
			}
			branch, ok := d.Branches[tag]
			if !ok {
				return NewError(InvalidFormat, off, "no branch registered for tag %v", tag)
			}
			if err := d.Tag.EncodeInto(w, tag); err != nil {
				return err
			}
			return branch.EncodeInto(w, v)
		},
	)
}
