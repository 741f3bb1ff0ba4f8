// Package opcode defines the three disjoint opcode namespaces (game,
// control, crypto) that partition every top-level packet type, plus the
// wire codec for the 4-bit packet-type enumeration carried in the packet
// flags header.
package opcode

import (
	"github.com/duskwire/pscodec/internal/atoms"
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

// Family identifies which of the three disjoint opcode namespaces a
// packet belongs to.
type Family int

const (
	Game Family = iota
	Control
	Crypto
)

func (f Family) String() string {
	switch f {
	case Game:
		return "game"
	case Control:
		return "control"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// GameOpcode is the one-byte opcode namespace for game-family packets.
type GameOpcode uint8

// Game opcode catalogue.
const (
	PlayerStateShiftOp GameOpcode = 0x10
	ObjectCreateOp     GameOpcode = 0x11
	GenericCollisionOp GameOpcode = 0x12
)

// ControlOpcode is the one-byte opcode namespace for control-family
// packets. Logon occupies byte 0x00, the opcode reserved for the control
// family; MultiPacket and Disconnect round out the catalogue.
type ControlOpcode uint8

const (
	LogonOp       ControlOpcode = 0x00
	MultiPacketOp ControlOpcode = 0x01
	DisconnectOp  ControlOpcode = 0x05
)

// CryptoOpcode is the one-byte opcode namespace for crypto-family packets.
type CryptoOpcode uint8

const (
	CryptoHandshakeOp CryptoOpcode = 0x01
)

// PacketType is the 4-bit enumeration in the packet flags header.
type PacketType uint8

const (
	ResetSequence PacketType = 1
	Unknown2      PacketType = 2
	CryptoType    PacketType = 3
	Normal        PacketType = 4
)

func (t PacketType) String() string {
	switch t {
	case ResetSequence:
		return "ResetSequence"
	case Unknown2:
		return "Unknown2"
	case CryptoType:
		return "Crypto"
	case Normal:
		return "Normal"
	default:
		return "Invalid"
	}
}

// PacketTypeCodec decodes/encodes the 4-bit packet-type field. Big-endian:
// it is an opcode-adjacent field written MSB-first, not a multi-byte
// little-endian integer.
var PacketTypeCodec = codec.Narrow(
	atoms.Enum("PacketType", 4, bitio.BigEndian, uint64(ResetSequence), uint64(Normal)),
	func(r uint64) (PacketType, error) { return PacketType(r), nil },
	func(d PacketType) uint64 { return uint64(d) },
)

// ByteCodec is the shared one-byte opcode codec every family namespace uses.
var ByteCodec = codec.Uint(8, bitio.BigEndian)
