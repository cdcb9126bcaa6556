package field

import (
	"fmt"

	"github.com/nanohq/nano-engine/pkg/nctype"
	"github.com/nanohq/nano-engine/pkg/network"
)

// New returns the field codec for a parsed type node. It is the single
// binding point between type names and codec implementations. net may be
// nil for types that never touch addresses.
func New(node *nctype.Node, net *network.Network) (Field, error) {
	switch node.Kind {
	case nctype.KindSimple:
		return newSimple(node.Name, net)
	case nctype.KindOptional:
		inner, err := New(node.Inner[0], net)
		if err != nil {
			return nil, err
		}
		return optionalField{inner: inner}, nil
	case nctype.KindSignedData, nctype.KindRawSignedData:
		inner, err := New(node.Inner[0], net)
		if err != nil {
			return nil, err
		}
		return signedDataField{
			inner:   inner,
			subtype: node.Name,
			raw:     node.Kind == nctype.KindRawSignedData,
		}, nil
	case nctype.KindTuple:
		elements := make([]Field, len(node.Inner))
		for i, child := range node.Inner {
			element, err := New(child, net)
			if err != nil {
				return nil, err
			}
			elements[i] = element
		}
		return tupleField{elements: elements}, nil
	case nctype.KindList, nctype.KindSet, nctype.KindDeque, nctype.KindFrozenSet:
		element, err := New(node.Inner[0], net)
		if err != nil {
			return nil, err
		}
		// the four collection names share one wire layout; only the
		// user-input uniqueness rule differs
		unique := node.Kind == nctype.KindSet || node.Kind == nctype.KindFrozenSet
		return collectionField{element: element, unique: unique}, nil
	case nctype.KindDict:
		key, err := New(node.Inner[0], net)
		if err != nil {
			return nil, err
		}
		value, err := New(node.Inner[1], net)
		if err != nil {
			return nil, err
		}
		return dictField{key: key, value: value}, nil
	}
	return nil, fmt.Errorf("node kind %d: %w", node.Kind, ErrUnsupportedType)
}

func newSimple(name string, net *network.Network) (Field, error) {
	switch name {
	case nctype.TypeStr:
		return strField{}, nil
	case nctype.TypeBool:
		return boolField{}, nil
	case nctype.TypeInt, nctype.TypeVarInt:
		return intField{}, nil
	case nctype.TypeAmount:
		return amountField{}, nil
	case nctype.TypeTimestamp:
		return timestampField{}, nil
	// bytes and TxOutputScript share the length-prefixed blob codec, and
	// the three id types share the raw 32-byte hash codec. The aliasing is
	// part of the wire format, not a shortcut.
	case nctype.TypeBytes, nctype.TypeTxOutputScript:
		return bytesField{}, nil
	case nctype.TypeContractId, nctype.TypeBlueprintId, nctype.TypeVertexId:
		return hashField{}, nil
	case nctype.TypeTokenUid:
		return tokenUidField{}, nil
	case nctype.TypeAddress:
		if net == nil {
			return nil, fmt.Errorf("type %q requires a network: %w", name, ErrUnsupportedType)
		}
		return addressField{net: net}, nil
	}
	return nil, fmt.Errorf("type %q: %w", name, ErrUnsupportedType)
}
