package construct

import (
	"github.com/duskwire/pscodec/internal/atoms"
	"github.com/duskwire/pscodec/internal/bitio"
	"github.com/duskwire/pscodec/internal/codec"
)

// SimpleItemClassID is the object class id assigned to SimpleItemData.
const SimpleItemClassID ClassID = 0x0011

// SimpleItemSizeBits is a GUID plus an 8-bit stack count.
const SimpleItemSizeBits = atoms.GUIDWidth + 8

// SimpleItemData is a second, shorter constructor payload (a stacked
// inventory item: which object and how many), proving the class-id-keyed
// dispatch generalizes past the REK example.
type SimpleItemData struct {
	Item  atoms.GUID
	Count uint8
}

// ClassID implements Payload.
func (SimpleItemData) ClassID() ClassID { return SimpleItemClassID }

var simpleItemCodec = codec.New(
	codec.Exact(SimpleItemSizeBits),
	func(r *bitio.Reader) (Payload, error) {
		guid, err := atoms.GUIDCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		count, err := codec.Uint(8, bitio.LittleEndian).Decode(r)
		if err != nil {
			return nil, err
		}
		return SimpleItemData{Item: guid, Count: uint8(count)}, nil
	},
	func(w *bitio.Writer, v Payload) error {
		item, ok := v.(SimpleItemData)
		if !ok {
			return codec.NewError(codec.InvalidFormat, w.Len(), "expected SimpleItemData, got %T", v)
		}
		if err := atoms.GUIDCodec.EncodeInto(w, item.Item); err != nil {
			return err
		}
		return codec.Uint(8, bitio.LittleEndian).EncodeInto(w, uint64(item.Count))
	},
)

// RegisterSimpleItem adds the SimpleItemData constructor to reg.
func RegisterSimpleItem(reg *Registry) error {
	return reg.Register(SimpleItemClassID, SimpleItemSizeBits, simpleItemCodec)
}
