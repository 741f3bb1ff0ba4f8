package atoms

import (
	"unicode/utf16"

	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

var asciiInner = codec.New(
	codec.Unbounded(),
	func(r *bitio.Reader) (string, error) {
		n := r.Remaining() / 8
		b, err := r.ReadBytes(n)
		if err != nil {
			return "", codec.Wrap(codec.EndOfStream, r.Offset(), err, "reading %d ascii bytes", n)
		}
		return string(b), nil
	},
	func(w *bitio.Writer, v string) error {
		return w.WriteBytes([]byte(v))
	},
)

var wideInner = codec.New(
	codec.Unbounded(),
	func(r *bitio.Reader) (string, error) {
		n := r.Remaining() / 8
		b, err := r.ReadBytes(n)
		if err != nil {
			return "", codec.Wrap(codec.EndOfStream, r.Offset(), err, "reading %d wide-string bytes", n)
		}
		units := make([]uint16, len(b)/2)
		for i := range units {
			units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
		}
		return string(utf16.Decode(units)), nil
	},
	func(w *bitio.Writer, v string) error {
		units := utf16.Encode([]rune(v))
		b := make([]byte, 0, len(units)*2)
		for _, u := range units {
			b = append(b, byte(u), byte(u>>8))
		}
		return w.WriteBytes(b)
	},
)

// ASCIIString decodes/encodes a narrow, length-prefixed ASCII string,
// choosing the short or long size form depending on length.
var ASCIIString = codec.VariableSizeBytes(StringSize, asciiInner)

// WideString decodes/encodes a length-prefixed UTF-16LE string, where the
// wire length counts symbols, not bytes.
var WideString = codec.VariableSizeBytes(wideStringSize, wideInner)

// AlignedASCIIString is ASCIIString with padBits zero bits inserted after
// the size prefix and before the character data, for strings that appear
// on a non-byte boundary. padBits must be in [0,7].
func AlignedASCIIString(padBits int) codec.Codec[string] {
	return codec.VariableSizeBytesAligned(padBits, StringSize, asciiInner)
}

// AlignedWideString is the aligned counterpart of WideString.
func AlignedWideString(padBits int) codec.Codec[string] {
	return codec.VariableSizeBytesAligned(padBits, wideStringSize, wideInner)
}
