package field

import (
	"fmt"

	"github.com/nanohq/nano-engine/pkg/codec"
	"github.com/nanohq/nano-engine/pkg/crypto"
	"github.com/nanohq/nano-engine/pkg/network"
)

// addressField carries validated addresses as a length-prefixed 25-byte
// payload (version byte, 20-byte hash, 4-byte checksum). The prefix is
// always the literal 25.
type addressField struct {
	net *network.Network
}

func (f addressField) Decode(r *codec.Reader) (any, error) {
	payload, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	result, err := crypto.NewAddress(payload, f.net)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f addressField) Encode(w *codec.Writer, value any) error {
	addr, ok := value.(crypto.Address)
	if !ok {
		return fmt.Errorf("expected address, got %T: %w", value, ErrWrongValueType)
	}
	return w.WriteBytes(addr.Bytes())
}

func (f addressField) ToUser(value any) (any, error) {
	addr, ok := value.(crypto.Address)
	if !ok {
		return nil, fmt.Errorf("expected address, got %T: %w", value, ErrWrongValueType)
	}
	return addr.Base58(), nil
}

func (f addressField) FromUser(data any) (any, error) {
	encoded, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("cannot read %T as address: %w", data, ErrUserInput)
	}
	result, err := crypto.NewAddressFromBase58(encoded, f.net)
	if err != nil {
		return nil, err
	}
	return result, nil
}
