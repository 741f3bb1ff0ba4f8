package codec

import "github.com/duskwire/pscodec/internal/bitio"

// EitherValue holds the result of an Either codec: exactly one of Left or
// Right is meaningful, selected by IsLeft.
type EitherValue[L, R any] struct {
	IsLeft bool
	Left   L
	Right  R
}

// Either decodes a tag bit; false selects right, true selects left.
// Encode emits the tag matching which side of the value is populated.
func Either[L, R any](tag Codec[bool], left Codec[L], right Codec[R]) Codec[EitherValue[L, R]] {
	size := Unbounded()
	if left.Size.IsExact() && right.Size.IsExact() && left.Size.Lower == right.Size.Lower {
		size = Exact(tag.Size.Lower + left.Size.Lower)
	}
	return New(
		size,
		func(r *bitio.Reader) (EitherValue[L, R], error) {
			isLeft, err := tag.Decode(r)
			if err != nil {
				return EitherValue[L, R]{}, err
			}
			if isLeft {
				lv, err := left.Decode(r)
				if err != nil {
					return EitherValue[L, R]{}, err
				}
				return EitherValue[L, R]{IsLeft: true, Left: lv}, nil
			}
			rv, err := right.Decode(r)
			if err != nil {
				return EitherValue[L, R]{}, err
			}
			return EitherValue[L, R]{IsLeft: false, Right: rv}, nil
		},
		func(w *bitio.Writer, v EitherValue[L, R]) error {
			if err := tag.EncodeInto(w, v.IsLeft); err != nil {
				return err
			}
			if v.IsLeft {
				return left.EncodeInto(w, v.Left)
			}
			return right.EncodeInto(w, v.Right)
		},
	)
}
