// Package packet implements the packet flags header, opcode
// demultiplexing, and the per-family registries that back
// Decode/Encode. It is the outermost layer of the codec core: it never
// interprets packet semantics, only frames and dispatches.
package packet

import (
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
	"github.com/duskwire/pscodec/internal/opcode"
)

// Flags is the 8-bit preamble of every framed packet: a 4-bit packet-type
// enumeration, a reserved zero bit, a secured boolean, and the two
// constant bits that every decode must verify and every encode must emit.
type Flags struct {
	Type    opcode.PacketType
	Secured bool
}

var (
	reservedBit        = codec.Const(0, 1)
	advancedConstBit   = codec.Const(1, 1)
	lengthSpecConstBit = codec.Const(0, 1)
)

// DecodeFlags reads the 8-bit flags header. It fails with ConstantMismatch
// if either constant bit does not carry its required value.
func DecodeFlags(r *bitio.Reader) (Flags, error) {
	pt, err := opcode.PacketTypeCodec.Decode(r)
	if err != nil {
		return Flags{}, err
	}
	if _, err := reservedBit.Decode(r); err != nil {
		return Flags{}, err
	}
	secured, err := codec.Bool().Decode(r)
	if err != nil {
		return Flags{}, err
	}
	if _, err := advancedConstBit.Decode(r); err != nil {
		return Flags{}, err
	}
	if _, err := lengthSpecConstBit.Decode(r); err != nil {
		return Flags{}, err
	}
	return Flags{Type: pt, Secured: secured}, nil
}

// EncodeFlags writes the 8-bit flags header, always emitting the two
// constant bits regardless of caller input.
func EncodeFlags(w *bitio.Writer, f Flags) error {
	if err := opcode.PacketTypeCodec.EncodeInto(w, f.Type); err != nil {
		return err
	}
	if err := reservedBit.EncodeInto(w, struct{}{}); err != nil {
		return err
	}
	if err := codec.Bool().EncodeInto(w, f.Secured); err != nil {
		return err
	}
	if err := advancedConstBit.EncodeInto(w, struct{}{}); err != nil {
		return err
	}
	return lengthSpecConstBit.EncodeInto(w, struct{}{})
}
