package field

import (
	"github.com/nanohq/nano-engine/pkg/codec"
	"github.com/nanohq/nano-engine/pkg/nctype"
	"github.com/nanohq/nano-engine/pkg/network"
)

// ForType parses a type descriptor and returns its field codec.
func ForType(typeDesc string, net *network.Network) (Field, error) {
	node, err := nctype.Parse(typeDesc)
	if err != nil {
		return nil, err
	}
	return New(node, net)
}

// Serialize encodes value under the given type descriptor.
func Serialize(value any, typeDesc string, net *network.Network) ([]byte, error) {
	f, err := ForType(typeDesc, net)
	if err != nil {
		return nil, err
	}
	writer := codec.NewWriter()
	if err := f.Encode(writer, value); err != nil {
		return nil, err
	}
	return writer.Result(), nil
}

// Deserialize decodes one value of the given type descriptor from the
// start of data. It returns the value and the number of bytes consumed;
// callers slicing several values off one buffer advance by that count.
func Deserialize(data []byte, typeDesc string, net *network.Network) (any, int, error) {
	f, err := ForType(typeDesc, net)
	if err != nil {
		return nil, 0, err
	}
	reader := codec.NewReader(data)
	value, err := f.Decode(reader)
	if err != nil {
		return nil, 0, err
	}
	return value, reader.BytesRead(), nil
}
