package codec

import "github.com/duskwire/pscodec/internal/bitio"

// Narrow produces a Codec[D] from a Codec[R] given mutually-partial-inverse
// mappings from : R -> (D, error) and to : D -> R. Decode failures in from
// surface as InvalidFormat errors at the offset where the underlying R
// value started.
func Narrow[R, D any](base Codec[R], from func(R) (D, error), to func(D) R) Codec[D] {
	return New(
		base.Size,
		func(r *bitio.Reader) (D, error) {
			off := r.Offset()
			rv, err := base.Decode(r)
			if err != nil {
				var zero D
				return zero, err
			}
			dv, err := from(rv)
			if err != nil {
				var zero D
				return zero, Wrap(InvalidFormat, off, err, "narrowing failed")
			}
			return dv, nil
		},
		func(w *bitio.Writer, v D) error {
			return base.EncodeInto(w, to(v))
		},
	)
}
