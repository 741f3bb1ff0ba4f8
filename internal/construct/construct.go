// Package construct implements object-creation constructor payloads: the
// per-class-id sub-records nested inside an ObjectCreateMessage. Each
// constructor declares its own exact bit size so the outer packet can
// delimit it without knowing its internal layout.
package construct

import (
	"errors"
	"fmt"
	"sync"

	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

// ClassID names the object class a constructor payload describes.
type ClassID uint16

// Payload is any decoded constructor payload.
type Payload interface {
	ClassID() ClassID
}

// ErrConstructorExists is returned by Register for a duplicate class id.
var ErrConstructorExists = errors.New("construct: constructor already registered")

type entry struct {
	codec    codec.Codec[Payload]
	sizeBits int
}

// Registry maps class ids to their constructor codec and declared bit
// size. It is populated once at startup; after that point Decode/Encode
// are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[ClassID]entry
}

// NewRegistry returns an empty constructor registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[ClassID]entry)}
}

// Register adds a constructor codec for classID. Duplicate registration is
// a fatal configuration error, returned rather than panicking so the
// caller's startup sequence decides how to fail.
func (reg *Registry) Register(classID ClassID, sizeBits int, c codec.Codec[Payload]) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.items[classID]; exists {
		return fmt.Errorf("%w: class id %#x", ErrConstructorExists, classID)
	}
	reg.items[classID] = entry{codec: c, sizeBits: sizeBits}
	return nil
}

// Decode looks up the constructor registered for classID, verifies its
// declared bit size matches payloadBits (the size the outer packet
// carried), and decodes it from an exact payloadBits-wide region carved
// out of r.
func (reg *Registry) Decode(classID ClassID, payloadBits int, r *bitio.Reader) (Payload, error) {
	off := r.Offset()
	reg.mu.RLock()
	e, ok := reg.items[classID]
	reg.mu.RUnlock()
	if !ok {
		return nil, codec.NewError(codec.UnknownOpcode, off, "unknown constructor class id %#x", classID)
	}
	if e.sizeBits != payloadBits {
		return nil, codec.NewError(codec.SizeMismatch, off,
			"class id %#x declares %d bits but outer packet specifies %d", classID, e.sizeBits, payloadBits)
	}
	sub, err := r.SubReader(payloadBits)
	if err != nil {
		return nil, codec.Wrap(codec.EndOfStream, off, err, "reading %d-bit constructor payload for class id %#x", payloadBits, classID)
	}
	v, err := e.codec.Decode(sub)
	if err != nil {
		return nil, err
	}
	if sub.Remaining() != 0 {
		return nil, codec.NewError(codec.SizeMismatch, off,
			"class id %#x: declared %d bits, decoder consumed %d", classID, payloadBits, payloadBits-sub.Remaining())
	}
	return v, nil
}

// Encode looks up the constructor registered for v's class id and encodes
// it, returning the encoded bytes (the final byte zero-padded in its
// low-order bits) together with the exact bit count, so the caller can
// write just those bits at whatever bit offset the outer packet is at.
func (reg *Registry) Encode(v Payload) ([]byte, int, error) {
	classID := v.ClassID()
	reg.mu.RLock()
	e, ok := reg.items[classID]
	reg.mu.RUnlock()
	if !ok {
		return nil, 0, codec.NewError(codec.InvalidFormat, 0, "no constructor registered for class id %#x", classID)
	}
	w := bitio.NewWriter()
	if err := e.codec.EncodeInto(w, v); err != nil {
		return nil, 0, err
	}
	if w.Len() != e.sizeBits {
		return nil, 0, codec.NewError(codec.SizeMismatch, 0,
			"class id %#x: declared %d bits, encoder produced %d", classID, e.sizeBits, w.Len())
	}
	return w.Bytes(), w.Len(), nil
}

// SizeBits reports the declared exact bit size for classID, for the
// caller to write into the outer packet's payload-length field.
func (reg *Registry) SizeBits(classID ClassID) (int, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	e, ok := reg.items[classID]
	return e.sizeBits, ok
}
