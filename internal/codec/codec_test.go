package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/duskwire/pscodec/internal/bitio"
)

func TestUintRoundTrip(t *testing.T) {
	c := Uint(12, bitio.LittleEndian)
	b, err := c.Encode(0xABC)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := c.Decode(bitio.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != 0xABC {
		t.Fatalf("got %#x", got)
	}
}

func TestUintEncodeOutOfRange(t *testing.T) {
	c := Uint(4, bitio.BigEndian)
	_, err := c.Encode(16)
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != ValueOutOfRange {
		t.Fatalf("expected ValueOutOfRange, got %v", err)
	}
}

func TestConstMismatch(t *testing.T) {
	c := Const(8, 4)
	r := bitio.NewReader([]byte{0x50}) // top nibble = 5, not 8
	_, err := c.Decode(r)
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != ConstantMismatch {
		t.Fatalf("expected ConstantMismatch, got %v", err)
	}
}

func TestConstRoundTrip(t *testing.T) {
	c := Const(2, 4)
	b, err := c.Encode(struct{}{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(b, []byte{0x20}) {
		t.Fatalf("got %x", b)
	}
	if _, err := c.Decode(bitio.NewReader(b)); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestIgnoreEmitsZerosAndSkips(t *testing.T) {
	c := Ignore(5)
	b, err := c.Encode(struct{}{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(b, []byte{0x00}) {
		t.Fatalf("got %x", b)
	}
	if _, err := c.Decode(bitio.NewReader([]byte{0xFF})); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestNarrowRoundTrip(t *testing.T) {
	base := Uint(8, bitio.BigEndian)
	c := Narrow(base,
		func(r uint64) (string, error) {
			if r == 0 {
				return "zero", nil
			}
			return "nonzero", nil
		},
		func(d string) uint64 {
			if d == "zero" {
				return 0
			}
			return 1
		},
	)
	b, err := c.Encode("nonzero")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := c.Decode(bitio.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "nonzero" {
		t.Fatalf("got %q", got)
	}
}

func TestNarrowFromFailureIsInvalidFormat(t *testing.T) {
	base := Uint(8, bitio.BigEndian)
	c := Narrow(base,
		func(r uint64) (string, error) {
			return "", errors.New("always fails")
		},
		func(d string) uint64 { return 0 },
	)
	_, err := c.Decode(bitio.NewReader([]byte{0x01}))
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != InvalidFormat {
		t.Fatalf("expected InvalidFormat, got %v", err)
	}
}

func TestEitherSelectsBranchByTag(t *testing.T) {
	c := Either(Bool(), Uint(15, bitio.LittleEndian), Uint(7, bitio.LittleEndian))

	left := EitherValue[uint64, uint64]{IsLeft: true, Left: 1000}
	b, err := c.Encode(left)
	if err != nil {
		t.Fatalf("encode left: %v", err)
	}
	got, err := c.Decode(bitio.NewReader(b))
	if err != nil {
		t.Fatalf("decode left: %v", err)
	}
	if !got.IsLeft || got.Left != 1000 {
		t.Fatalf("got %+v", got)
	}

	right := EitherValue[uint64, uint64]{IsLeft: false, Right: 42}
	b, err = c.Encode(right)
	if err != nil {
		t.Fatalf("encode right: %v", err)
	}
	got, err = c.Decode(bitio.NewReader(b))
	if err != nil {
		t.Fatalf("decode right: %v", err)
	}
	if got.IsLeft || got.Right != 42 {
		t.Fatalf("got %+v", got)
	}
}

func TestVariableSizeBytesRoundTripAndSizeMismatch(t *testing.T) {
	sizeCodec := Uint(8, bitio.BigEndian)
	inner := Uint(8, bitio.BigEndian)
	c := VariableSizeBytes(sizeCodec, inner)

	b, err := c.Encode(0x7F)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x7F}) {
		t.Fatalf("got %x", b)
	}
	got, err := c.Decode(bitio.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != 0x7F {
		t.Fatalf("got %#x", got)
	}

	// declared size 2 bytes but inner (8-bit uint) only consumes 1.
	bad := []byte{0x02, 0x01, 0x02}
	_, err = c.Decode(bitio.NewReader(bad))
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != SizeMismatch {
		t.Fatalf("expected SizeMismatch, got %v", err)
	}
}

func TestDiscriminatedDispatch(t *testing.T) {
	type msg struct {
		tag uint64
		val uint64
	}
	d := Discriminated[uint64, msg]{
		Tag: Uint(8, bitio.BigEndian),
		Branches: map[uint64]Codec[msg]{
			1: Narrow(Uint(8, bitio.BigEndian),
				func(r uint64) (msg, error) { return msg{tag: 1, val: r}, nil },
				func(m msg) uint64 { return m.val },
			),
		},
		TagOf: func(m msg) (uint64, bool) { return m.tag, true },
	}
	c := d.Codec()

	b, err := c.Encode(msg{tag: 1, val: 9})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := c.Decode(bitio.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != (msg{tag: 1, val: 9}) {
		t.Fatalf("got %+v", got)
	}

	_, err = c.Decode(bitio.NewReader([]byte{0xFF, 0x00}))
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != UnknownOpcode {
		t.Fatalf("expected UnknownOpcode, got %v", err)
	}
}
