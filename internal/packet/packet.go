package packet

import (
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
	"github.com/duskwire/pscodec/internal/construct"
	"github.com/duskwire/pscodec/internal/opcode"
)

// Body is any decoded packet body. Every concrete body type reports the
// one-byte opcode it was registered under, so Encode can look its codec
// back up without the caller repeating the opcode separately.
type Body interface {
	Opcode() uint8
}

// Packet is a fully decoded frame: its flags header, which family its
// opcode belongs to, and the typed body the family's registered codec
// produced.
type Packet struct {
	Flags  Flags
	Family opcode.Family
	Body   Body
}

// defaultRegistry is the process-wide catalogue package-level Decode and
// Encode dispatch through, registered once at startup via RegisterGame /
// RegisterControl / RegisterCrypto, mirroring the read-mostly-after-init
// shape of internal/seeds.Registry.
var defaultRegistry = NewRegistry()

// RegisterGame adds a game-family opcode to the default catalogue.
func RegisterGame(op opcode.GameOpcode, c codec.Codec[Body]) error {
	return defaultRegistry.RegisterGame(op, c)
}

// RegisterControl adds a control-family opcode to the default catalogue.
func RegisterControl(op opcode.ControlOpcode, c codec.Codec[Body]) error {
	return defaultRegistry.RegisterControl(op, c)
}

// RegisterCrypto adds a crypto-family opcode to the default catalogue.
func RegisterCrypto(op opcode.CryptoOpcode, c codec.Codec[Body]) error {
	return defaultRegistry.RegisterCrypto(op, c)
}

// RegisterDefaultCatalogue binds the full game/control/crypto catalogue
// to the package-level default registry, for callers that only ever
// decode/encode through the package-level Decode and Encode functions
// rather than a Registry they manage themselves.
func RegisterDefaultCatalogue(creg *construct.Registry) error {
	if err := RegisterGameCatalogue(defaultRegistry, creg); err != nil {
		return err
	}
	if err := RegisterControlCatalogue(defaultRegistry); err != nil {
		return err
	}
	return RegisterCryptoCatalogue(defaultRegistry)
}

// Decode reads one framed packet from data: flags header, opcode byte,
// then the body the resolved family codec produces.
func Decode(data []byte) (Packet, error) {
	r := bitio.NewReader(data)
	return defaultRegistry.DecodePacket(r)
}

// Encode writes p back out bit-exactly.
func Encode(p Packet) ([]byte, error) {
	w := bitio.NewWriter()
	if err := defaultRegistry.EncodePacket(w, p); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodePacket reads one framed packet starting at r's current position.
// Exported on Registry (rather than only as the package-level Decode) so
// MultiPacket's body codec can re-dispatch nested sub-packets through the
// same registry rather than the package-level default one.
func (reg *Registry) DecodePacket(r *bitio.Reader) (Packet, error) {
	flags, err := DecodeFlags(r)
	if err != nil {
		return Packet{}, err
	}

	off := r.Offset()
	opByte, err := opcode.ByteCodec.Decode(r)
	if err != nil {
		return Packet{}, err
	}

	var family opcode.Family
	var fr *familyRegistry
	if flags.Type == opcode.CryptoType {
		family, fr = opcode.Crypto, reg.crypto
	} else {
		family, fr = reg.familyFor(uint8(opByte))
	}

	bodyCodec, ok := fr.resolve(uint8(opByte))
	if !ok {
		return Packet{}, codec.NewError(codec.UnknownOpcode, off, "no %s opcode registered for %#x", family, opByte)
	}
	body, err := bodyCodec.Decode(r)
	if err != nil {
		return Packet{}, err
	}
	return Packet{Flags: flags, Family: family, Body: body}, nil
}

// EncodePacket writes p to w using the same registry that decoded it (or
// an equivalent one registered with the same opcodes).
func (reg *Registry) EncodePacket(w *bitio.Writer, p Packet) error {
	if err := EncodeFlags(w, p.Flags); err != nil {
		return err
	}
	opByte := p.Body.Opcode()
	if err := opcode.ByteCodec.EncodeInto(w, uint64(opByte)); err != nil {
		return err
	}

	var fr *familyRegistry
	switch p.Family {
	case opcode.Crypto:
		fr = reg.crypto
	case opcode.Control:
		fr = reg.control
	default:
		fr = reg.game
	}
	bodyCodec, ok := fr.resolve(opByte)
	if !ok {
		return codec.NewError(codec.InvalidFormat, w.Len(), "no %s opcode registered for %#x", p.Family, opByte)
	}
	return bodyCodec.EncodeInto(w, p.Body)
}
