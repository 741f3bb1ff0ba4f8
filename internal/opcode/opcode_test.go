package opcode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

func TestPacketTypeRoundTrip(t *testing.T) {
	for _, pt := range []PacketType{ResetSequence, Unknown2, CryptoType, Normal} {
		w := bitio.NewWriter()
		if err := PacketTypeCodec.EncodeInto(w, pt); err != nil {
			t.Fatalf("encode %v: %v", pt, err)
		}
		_ = w.WriteBits(0, 4) // pad the nibble to a full byte for the reader
		got, err := PacketTypeCodec.Decode(bitio.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("decode %v: %v", pt, err)
		}
		if got != pt {
			t.Fatalf("got %v want %v", got, pt)
		}
	}
}

func TestPacketTypeOutOfRange(t *testing.T) {
	_, err := PacketTypeCodec.Decode(bitio.NewReader([]byte{0x50})) // 5, outside [1,4]
	var cerr *codec.Error
	if !errors.As(err, &cerr) || cerr.Kind != codec.EnumOutOfRange {
		t.Fatalf("expected EnumOutOfRange, got %v", err)
	}
}

func TestByteCodecRoundTrip(t *testing.T) {
	b, err := ByteCodec.Encode(0xFF)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(b, []byte{0xFF}) {
		t.Fatalf("got %x", b)
	}
}
