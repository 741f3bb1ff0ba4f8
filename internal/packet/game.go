package packet

import (
	"github.com/duskwire/pscodec/internal/atoms"
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
	"github.com/duskwire/pscodec/internal/construct"
	"github.com/duskwire/pscodec/internal/opcode"
)

// PlayerStateShift carries a GUID and a 3-axis position, each axis a
// 32-bit little-endian fixed-point field. The codec layer treats the
// fixed-point encoding as an opaque 32-bit unit; interpreting it as a
// real-world coordinate is outside this module's scope.
type PlayerStateShift struct {
	Actor atoms.GUID
	X, Y, Z uint32
}

// Opcode implements Body.
func (PlayerStateShift) Opcode() uint8 { return uint8(opcode.PlayerStateShiftOp) }

var playerStateShiftCodec = codec.New(
	codec.Exact(atoms.GUIDWidth + 32*3),
	func(r *bitio.Reader) (Body, error) {
		actor, err := atoms.GUIDCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		x, err := codec.Uint(32, bitio.LittleEndian).Decode(r)
		if err != nil {
			return nil, err
		}
		y, err := codec.Uint(32, bitio.LittleEndian).Decode(r)
		if err != nil {
			return nil, err
		}
		z, err := codec.Uint(32, bitio.LittleEndian).Decode(r)
		if err != nil {
			return nil, err
		}
		return PlayerStateShift{Actor: actor, X: uint32(x), Y: uint32(y), Z: uint32(z)}, nil
	},
	func(w *bitio.Writer, v Body) error {
		shift, ok := v.(PlayerStateShift)
		if !ok {
			return codec.NewError(codec.InvalidFormat, w.Len(), "expected PlayerStateShift, got %T", v)
		}
		if err := atoms.GUIDCodec.EncodeInto(w, shift.Actor); err != nil {
			return err
		}
		if err := codec.Uint(32, bitio.LittleEndian).EncodeInto(w, uint64(shift.X)); err != nil {
			return err
		}
		if err := codec.Uint(32, bitio.LittleEndian).EncodeInto(w, uint64(shift.Y)); err != nil {
			return err
		}
		return codec.Uint(32, bitio.LittleEndian).EncodeInto(w, uint64(shift.Z))
	},
)

// GenericCollision is a no-op placeholder body proving that an opcode
// with an empty payload round-trips cleanly through the dispatcher.
type GenericCollision struct{}

// Opcode implements Body.
func (GenericCollision) Opcode() uint8 { return uint8(opcode.GenericCollisionOp) }

var genericCollisionCodec = codec.New(
	codec.Exact(0),
	func(r *bitio.Reader) (Body, error) { return GenericCollision{}, nil },
	func(w *bitio.Writer, v Body) error {
		if _, ok := v.(GenericCollision); !ok {
			return codec.NewError(codec.InvalidFormat, w.Len(), "expected GenericCollision, got %T", v)
		}
		return nil
	},
)

// ObjectCreateMessage instantiates a game object: a class id, the exact
// bit length of its constructor payload, and the decoded payload itself.
// Dispatch by class id is delegated to an internal/construct.Registry.
type ObjectCreateMessage struct {
	Class   construct.ClassID
	Payload construct.Payload
}

// Opcode implements Body.
func (ObjectCreateMessage) Opcode() uint8 { return uint8(opcode.ObjectCreateOp) }

var (
	classIDCodec    = codec.Uint(16, bitio.LittleEndian)
	payloadSizeCodec = codec.Uint(16, bitio.LittleEndian)
)

// objectCreateCodec builds the ObjectCreateMessage body codec bound to
// creg, the constructor registry that owns the class-id-keyed dispatch.
func objectCreateCodec(creg *construct.Registry) codec.Codec[Body] {
	return codec.New(
		codec.Unbounded(),
		func(r *bitio.Reader) (Body, error) {
			classRaw, err := classIDCodec.Decode(r)
			if err != nil {
				return nil, err
			}
			payloadBits, err := payloadSizeCodec.Decode(r)
			if err != nil {
				return nil, err
			}
			classID := construct.ClassID(classRaw)
			payload, err := creg.Decode(classID, int(payloadBits), r)
			if err != nil {
				return nil, err
			}
			return ObjectCreateMessage{Class: classID, Payload: payload}, nil
		},
		func(w *bitio.Writer, v Body) error {
			msg, ok := v.(ObjectCreateMessage)
			if !ok {
				return codec.NewError(codec.InvalidFormat, w.Len(), "expected ObjectCreateMessage, got %T", v)
			}
			payloadBytes, bits, err := creg.Encode(msg.Payload)
			if err != nil {
				return err
			}
			if err := classIDCodec.EncodeInto(w, uint64(msg.Class)); err != nil {
				return err
			}
			if err := payloadSizeCodec.EncodeInto(w, uint64(bits)); err != nil {
				return err
			}
			return w.WriteRawBits(payloadBytes, bits)
		},
	)
}

// RegisterGameCatalogue adds the game-family opcode catalogue to reg,
// binding ObjectCreateMessage's dispatch to creg.
func RegisterGameCatalogue(reg *Registry, creg *construct.Registry) error {
	if err := reg.RegisterGame(opcode.PlayerStateShiftOp, playerStateShiftCodec); err != nil {
		return err
	}
	if err := reg.RegisterGame(opcode.ObjectCreateOp, objectCreateCodec(creg)); err != nil {
		return err
	}
	return reg.RegisterGame(opcode.GenericCollisionOp, genericCollisionCodec)
}
