package construct

import (
	"errors"
	"testing"

	"github.com/duskwire/pscodec/internal/atoms"
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

func newCatalogue(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	if err := RegisterDetailedREK(reg); err != nil {
		t.Fatalf("register rek: %v", err)
	}
	if err := RegisterSimpleItem(reg); err != nil {
		t.Fatalf("register simple item: %v", err)
	}
	return reg
}

func TestRegisterDuplicateClassIDFails(t *testing.T) {
	reg := newCatalogue(t)
	if err := RegisterDetailedREK(reg); !errors.Is(err, ErrConstructorExists) {
		t.Fatalf("expected ErrConstructorExists, got %v", err)
	}
}

func TestDetailedREKRoundTrip(t *testing.T) {
	reg := newCatalogue(t)
	want := DetailedREKData{Unk1: 0xA, Unk2: 0x1234}

	payload, bits, err := reg.Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if bits != DetailedREKSizeBits {
		t.Fatalf("encoded %d bits, want %d", bits, DetailedREKSizeBits)
	}

	r := bitio.NewReader(payload)
	got, err := reg.Decode(DetailedREKClassID, DetailedREKSizeBits, r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != Payload(want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestDetailedREKConstantMismatch(t *testing.T) {
	reg := newCatalogue(t)
	payload, _, err := reg.Encode(DetailedREKData{Unk1: 0xA, Unk2: 0x1234})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Flip a bit inside the first reserved constant (value 8, width 4,
	// immediately after the 4-bit unk1 field).
	payload[0] ^= 0x08

	r := bitio.NewReader(payload)
	_, err = reg.Decode(DetailedREKClassID, DetailedREKSizeBits, r)
	var cerr *codec.Error
	if !errors.As(err, &cerr) || cerr.Kind != codec.ConstantMismatch {
		t.Fatalf("expected ConstantMismatch, got %v", err)
	}
}

func TestDecodeSizeMismatchAgainstDeclaredPayloadLength(t *testing.T) {
	reg := newCatalogue(t)
	payload, _, err := reg.Encode(DetailedREKData{Unk1: 0xA, Unk2: 0x1234})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	r := bitio.NewReader(payload)
	_, err = reg.Decode(DetailedREKClassID, DetailedREKSizeBits+1, r)
	var cerr *codec.Error
	if !errors.As(err, &cerr) || cerr.Kind != codec.SizeMismatch {
		t.Fatalf("expected SizeMismatch, got %v", err)
	}
}

func TestDecodeUnknownClassID(t *testing.T) {
	reg := newCatalogue(t)
	r := bitio.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0})
	_, err := reg.Decode(ClassID(0xFFFF), 67, r)
	var cerr *codec.Error
	if !errors.As(err, &cerr) || cerr.Kind != codec.UnknownOpcode {
		t.Fatalf("expected UnknownOpcode, got %v", err)
	}
}

func TestSimpleItemRoundTrip(t *testing.T) {
	reg := newCatalogue(t)
	want := SimpleItemData{Item: atoms.GUID(42), Count: 7}

	payload, bits, err := reg.Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if bits != SimpleItemSizeBits {
		t.Fatalf("encoded %d bits, want %d", bits, SimpleItemSizeBits)
	}

	r := bitio.NewReader(payload)
	got, err := reg.Decode(SimpleItemClassID, SimpleItemSizeBits, r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != Payload(want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestSizeBitsLookup(t *testing.T) {
	reg := newCatalogue(t)
	n, ok := reg.SizeBits(DetailedREKClassID)
	if !ok || n != DetailedREKSizeBits {
		t.Fatalf("got (%d,%v), want (%d,true)", n, ok, DetailedREKSizeBits)
	}
	if _, ok := reg.SizeBits(ClassID(0xDEAD)); ok {
		t.Fatal("expected ok=false for unregistered class id")
	}
}
