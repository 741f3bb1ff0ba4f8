package packet

import (
	"github.com/duskwire/pscodec/internal/atoms"
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
	"github.com/duskwire/pscodec/internal/opcode"
)

// Logon is the client login announcement: a token identifying the
// session being established.
type Logon struct {
	Token atoms.GUID
}

// Opcode implements Body.
func (Logon) Opcode() uint8 { return uint8(opcode.LogonOp) }

var logonCodec = codec.New(
	codec.Exact(atoms.GUIDWidth),
	func(r *bitio.Reader) (Body, error) {
		token, err := atoms.GUIDCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		return Logon{Token: token}, nil
	},
	func(w *bitio.Writer, v Body) error {
		logon, ok := v.(Logon)
		if !ok {
			return codec.NewError(codec.InvalidFormat, w.Len(), "expected Logon, got %T", v)
		}
		return atoms.GUIDCodec.EncodeInto(w, logon.Token)
	},
)

// Disconnect carries no payload; its presence alone ends the session.
type Disconnect struct{}

// Opcode implements Body.
func (Disconnect) Opcode() uint8 { return uint8(opcode.DisconnectOp) }

var disconnectCodec = codec.New(
	codec.Exact(0),
	func(r *bitio.Reader) (Body, error) { return Disconnect{}, nil },
	func(w *bitio.Writer, v Body) error {
		if _, ok := v.(Disconnect); !ok {
			return codec.NewError(codec.InvalidFormat, w.Len(), "expected Disconnect, got %T", v)
		}
		return nil
	},
)

// MultiPacket bundles several fully-framed sub-packets (each with its own
// flags header and opcode) behind a single outer Logon/Disconnect-style
// opcode. Decoding one re-enters the same packet dispatcher per
// sub-packet, so a MultiPacket may itself contain a MultiPacket.
type MultiPacket struct {
	SubPackets []Packet
}

// Opcode implements Body.
func (MultiPacket) Opcode() uint8 { return uint8(opcode.MultiPacketOp) }

var subPacketCountCodec = codec.Uint(16, bitio.LittleEndian)
var subPacketLenCodec = codec.Uint(16, bitio.LittleEndian)

// multiPacketCodec builds the MultiPacket body codec bound to reg, the
// same registry the outer dispatcher uses, so nested sub-packets resolve
// against the identical catalogue.
func multiPacketCodec(reg *Registry) codec.Codec[Body] {
	return codec.New(
		codec.Unbounded(),
		func(r *bitio.Reader) (Body, error) {
			count, err := subPacketCountCodec.Decode(r)
			if err != nil {
				return nil, err
			}
			subs := make([]Packet, 0, count)
			for i := uint64(0); i < count; i++ {
				off := r.Offset()
				length, err := subPacketLenCodec.Decode(r)
				if err != nil {
					return nil, err
				}
				region, err := r.ReadBytes(int(length))
				if err != nil {
					return nil, codec.Wrap(codec.EndOfStream, off, err, "reading sub-packet %d of %d", i, count)
				}
				sub, err := reg.DecodePacket(bitio.NewReader(region))
				if err != nil {
					return nil, err
				}
				subs = append(subs, sub)
			}
			return MultiPacket{SubPackets: subs}, nil
		},
		func(w *bitio.Writer, v Body) error {
			mp, ok := v.(MultiPacket)
			if !ok {
				return codec.NewError(codec.InvalidFormat, w.Len(), "expected MultiPacket, got %T", v)
			}
			if err := subPacketCountCodec.EncodeInto(w, uint64(len(mp.SubPackets))); err != nil {
				return err
			}
			for _, sub := range mp.SubPackets {
				buf := bitio.NewWriter()
				if err := reg.EncodePacket(buf, sub); err != nil {
					return err
				}
				payload := buf.Bytes()
				if err := subPacketLenCodec.EncodeInto(w, uint64(len(payload))); err != nil {
					return err
				}
				if err := w.WriteBytes(payload); err != nil {
					return err
				}
			}
			return nil
		},
	)
}

// RegisterControlCatalogue adds the control-family opcode catalogue to reg.
func RegisterControlCatalogue(reg *Registry) error {
	if err := reg.RegisterControl(opcode.LogonOp, logonCodec); err != nil {
		return err
	}
	if err := reg.RegisterControl(opcode.MultiPacketOp, multiPacketCodec(reg)); err != nil {
		return err
	}
	return reg.RegisterControl(opcode.DisconnectOp, disconnectCodec)
}
