package packet

import (
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
	"github.com/duskwire/pscodec/internal/opcode"
)

// CryptoHandshake carries an opaque, length-prefixed blob. Interpreting
// or performing the handshake itself lives one layer above this module;
// the codec only frames the blob.
type CryptoHandshake struct {
	Blob []byte
}

// Opcode implements Body.
func (CryptoHandshake) Opcode() uint8 { return uint8(opcode.CryptoHandshakeOp) }

var blobSizeCodec = codec.Uint(16, bitio.LittleEndian)

var cryptoHandshakeCodec = codec.New(
	codec.Unbounded(),
	func(r *bitio.Reader) (Body, error) {
		n, err := blobSizeCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		blob, err := r.ReadBytes(int(n))
		if err != nil {
			return nil, codec.Wrap(codec.EndOfStream, r.Offset(), err, "reading %d-byte crypto blob", n)
		}
		return CryptoHandshake{Blob: blob}, nil
	},
	func(w *bitio.Writer, v Body) error {
		hs, ok := v.(CryptoHandshake)
		if !ok {
			return codec.NewError(codec.InvalidFormat, w.Len(), "expected CryptoHandshake, got %T", v)
		}
		if err := blobSizeCodec.EncodeInto(w, uint64(len(hs.Blob))); err != nil {
			return err
		}
		return w.WriteBytes(hs.Blob)
	},
)

// RegisterCryptoCatalogue adds the crypto-family opcode catalogue to reg.
func RegisterCryptoCatalogue(reg *Registry) error {
	return reg.RegisterCrypto(opcode.CryptoHandshakeOp, cryptoHandshakeCodec)
}
