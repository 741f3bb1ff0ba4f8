package atoms

import (
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

// GUID names a live game object. It is opaque to the codec layer: no
// validation beyond fitting in its declared width.
type GUID uint32

// GUIDWidth is the wire width of a GUID field. PlanetSide's object pool
// index fits in 16 bits.
const GUIDWidth = 16

// GUIDCodec decodes/encodes a GUID as a little-endian GUIDWidth-bit
// unsigned integer.
var GUIDCodec = codec.Narrow(
	codec.Uint(GUIDWidth, bitio.LittleEndian),
	func(r uint64) (GUID, error) { return GUID(r), nil },
	func(g GUID) uint64 { return uint64(g) },
)
