// Package atoms implements the protocol's reusable value codecs: the
// enumeration codec, length-prefixed ASCII/wide strings (plain and
// byte-aligned), and GUIDs. These sit atop internal/bitio and
// internal/codec and are composed by internal/opcode, internal/packet, and
// internal/construct to build concrete packet and constructor codecs.
package atoms

import (
	"fmt"

	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

// Enum builds a Codec for a closed numeric range [firstID, maxID],
// storage-width bits wide. It panics at construction time if maxID does
// not fit in width bits -- the same "fatal configuration error" treatment
// the registries give duplicate opcode registration.
func Enum(name string, width int, endian bitio.Endian, firstID, maxID uint64) codec.Codec[uint64] {
	if maxID > (uint64(1)<<width)-1 {
		panic(fmt.Sprintf("atoms: enum %s maxId %d does not fit in %d bits", name, maxID, width))
	}
	base := codec.Uint(width, endian)
	return codec.New(
		base.Size,
		func(r *bitio.Reader) (uint64, error) {
			off := r.Offset()
			v, err := base.Decode(r)
			if err != nil {
				return 0, err
			}
			if v < firstID || v > maxID {
				return 0, codec.NewError(codec.EnumOutOfRange, off,
					"expected %s with ID between [%d, %d], but got %d", name, firstID, maxID, v)
			}
			return v, nil
		},
		func(w *bitio.Writer, v uint64) error {
			return base.EncodeInto(w, v)
		},
	)
}
