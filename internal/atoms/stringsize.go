package atoms

import (
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

// StringSize is the self-describing length prefix shared by every string
// codec: one leading bit selects between a 7-bit length (0..127, one byte
// total) and a 15-bit length (128..32767, two bytes total). Encode always
// picks the short form when the length fits.
var StringSize = codec.Narrow(
	codec.Either(codec.Bool(), codec.Uint(15, bitio.LittleEndian), codec.Uint(7, bitio.LittleEndian)),
	func(e codec.EitherValue[uint64, uint64]) (uint64, error) {
		if e.IsLeft {
			return e.Left, nil
		}
		return e.Right, nil
	},
	func(n uint64) codec.EitherValue[uint64, uint64] {
		if n > 127 {
			return codec.EitherValue[uint64, uint64]{IsLeft: true, Left: n}
		}
		return codec.EitherValue[uint64, uint64]{IsLeft: false, Right: n}
	},
)

// wideStringSize narrows StringSize (which counts symbols on the wire) to
// count bytes, the unit VariableSizeBytes always works in: the wire value
// S represents UTF-16 symbols, and the region is 2*S bytes.
var wideStringSize = codec.Narrow(
	StringSize,
	func(symbols uint64) (uint64, error) { return symbols * 2, nil },
	func(bytes uint64) uint64 { return bytes / 2 },
)
