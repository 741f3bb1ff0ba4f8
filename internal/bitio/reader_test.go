package bitio

import (
	"errors"
	"testing"
)

func TestReadUintLittleEndianRoundTrip(t *testing.T) {
	w := NewWriter()
	if err := w.WriteUint(0x1234, 16, LittleEndian); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := NewReader(w.Bytes())
	got, err := r.ReadUint(16, LittleEndian)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 0x1234 {
		t.Fatalf("got %#x, want %#x", got, 0x1234)
	}
}

func TestReadUintSubByteLittleEndian(t *testing.T) {
	w := NewWriter()
	if err := w.WriteUint(0xA, 4, LittleEndian); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := NewReader(w.Bytes())
	got, err := r.ReadUint(4, LittleEndian)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 0xA {
		t.Fatalf("got %#x, want 0xA", got)
	}
}

func TestReadUintBigEndian(t *testing.T) {
	w := NewWriter()
	if err := w.WriteUint(0b1011, 4, BigEndian); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := NewReader(w.Bytes())
	got, err := r.ReadUint(4, BigEndian)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 0b1011 {
		t.Fatalf("got %#b, want 0b1011", got)
	}
}

func TestReadBoolSequence(t *testing.T) {
	r := NewReader([]byte{0b10110000})
	want := []bool{true, false, true, true, false, false, false, false}
	for i, w := range want {
		got, err := r.ReadBool()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("bit %d: got %v want %v", i, got, w)
		}
	}
}

func TestReadEndOfStream(t *testing.T) {
	r := NewReader([]byte{0x00})
	if _, err := r.ReadUint(16, LittleEndian); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected ErrEndOfStream, got %v", err)
	}
}

func TestSkipAdvancesCursor(t *testing.T) {
	r := NewReader([]byte{0xFF, 0x00})
	if err := r.Skip(8); err != nil {
		t.Fatalf("skip: %v", err)
	}
	v, err := r.ReadUint(8, BigEndian)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v != 0 {
		t.Fatalf("got %#x, want 0", v)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0xAB})
	peeked, err := r.PeekUint(8, BigEndian)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if r.Offset() != 0 {
		t.Fatalf("peek advanced offset to %d", r.Offset())
	}
	read, err := r.ReadUint(8, BigEndian)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if peeked != read {
		t.Fatalf("peek %#x != read %#x", peeked, read)
	}
}

func TestRemaining(t *testing.T) {
	r := NewReader([]byte{0, 0})
	if r.Remaining() != 16 {
		t.Fatalf("got %d, want 16", r.Remaining())
	}
	_, _ = r.ReadUint(5, BigEndian)
	if r.Remaining() != 11 {
		t.Fatalf("got %d, want 11", r.Remaining())
	}
}
