package construct

import (
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

// DetailedREKClassID is the object class id this module assigns to the
// Remote Electronics Kit constructor. The original protocol's real
// class id table is out of scope; this value only needs to be unique
// within this module's own registry.
const DetailedREKClassID ClassID = 0x0010

// DetailedREKSizeBits is the REK payload's declared exact bit size:
// 0xA(4) | 8(4) | 0(20) | 2(4) | 0(16) | 8(4) | unk2(15).
const DetailedREKSizeBits = 4 + 4 + 20 + 4 + 16 + 4 + 15

// DetailedREKData is the REK object-creation constructor payload. unk1 and
// unk2 are the only two fields that carry real data; everything else is a
// reserved constant the encoder reproduces verbatim and the decoder
// verifies exactly.
type DetailedREKData struct {
	Unk1 uint8  // 4 bits
	Unk2 uint16 // 15 bits
}

// ClassID implements Payload.
func (DetailedREKData) ClassID() ClassID { return DetailedREKClassID }

var (
	rekConstA = codec.Const(8, 4)
	rekConstB = codec.Const(0, 20)
	rekConstC = codec.Const(2, 4)
	rekConstD = codec.Const(0, 16)
	rekConstE = codec.Const(8, 4)
)

var detailedREKCodec = codec.New(
	codec.Exact(DetailedREKSizeBits),
	func(r *bitio.Reader) (Payload, error) {
		unk1, err := codec.Uint(4, bitio.LittleEndian).Decode(r)
		if err != nil {
			return nil, err
		}
		if _, err := rekConstA.Decode(r); err != nil {
			return nil, err
		}
		if _, err := rekConstB.Decode(r); err != nil {
			return nil, err
		}
		if _, err := rekConstC.Decode(r); err != nil {
			return nil, err
		}
		if _, err := rekConstD.Decode(r); err != nil {
			return nil, err
		}
		if _, err := rekConstE.Decode(r); err != nil {
			return nil, err
		}
		unk2, err := codec.Uint(15, bitio.LittleEndian).Decode(r)
		if err != nil {
			return nil, err
		}
		return DetailedREKData{Unk1: uint8(unk1), Unk2: uint16(unk2)}, nil
	},
	func(w *bitio.Writer, v Payload) error {
		rek, ok := v.(DetailedREKData)
		if !ok {
			return codec.NewError(codec.InvalidFormat, w.Len(), "expected DetailedREKData, got %T", v)
		}
		if err := codec.Uint(4, bitio.LittleEndian).EncodeInto(w, uint64(rek.Unk1)); err != nil {
			return err
		}
		if err := rekConstA.EncodeInto(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConstB.EncodeInto(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConstC.EncodeInto(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConstD.EncodeInto(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConstE.EncodeInto(w, struct{}{}); err != nil {
			return err
		}
		return codec.Uint(15, bitio.LittleEndian).EncodeInto(w, uint64(rek.Unk2))
	},
)

// RegisterDetailedREK adds the REK constructor to reg.
func RegisterDetailedREK(reg *Registry) error {
	return reg.Register(DetailedREKClassID, DetailedREKSizeBits, detailedREKCodec)
}
