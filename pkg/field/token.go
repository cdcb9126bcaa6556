package field

import (
	"fmt"

	"github.com/nanohq/nano-engine/pkg/codec"
)

const (
	tokenTagNative = 0x00
	tokenTagCustom = 0x01
)

// nativeTokenUid is the in-memory and user form of the chain's native
// token: the single byte 0x00.
var nativeTokenUid = codec.Hex{tokenTagNative}

// tokenUidField carries token identifiers as a tag byte: 0x00 for the
// native token with no further bytes, 0x01 followed by a raw 32-byte id
// for a custom token.
type tokenUidField struct{}

func (tokenUidField) Decode(r *codec.Reader) (any, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tokenTagNative:
		return codec.Hex{tokenTagNative}, nil
	case tokenTagCustom:
		uid, err := r.ReadFixedBytes(codec.HashLength)
		if err != nil {
			return nil, err
		}
		return codec.Hex(uid), nil
	}
	return nil, fmt.Errorf("invalid token uid tag 0x%02x: %w", tag, codec.ErrInvalidData)
}

func (tokenUidField) Encode(w *codec.Writer, value any) error {
	uid, err := asBytes(value)
	if err != nil {
		return err
	}
	if uid.Equal(nativeTokenUid) {
		w.WriteTag(tokenTagNative)
		return nil
	}
	if len(uid) != codec.HashLength {
		return fmt.Errorf("token uid must be the native uid %s or %d bytes, got %d bytes: %w",
			nativeTokenUid, codec.HashLength, len(uid), ErrWrongValueType)
	}
	w.WriteTag(tokenTagCustom)
	w.WriteFixedBytes(uid)
	return nil
}

func (tokenUidField) ToUser(value any) (any, error) {
	uid, err := asBytes(value)
	if err != nil {
		return nil, err
	}
	return uid.String(), nil
}

func (tokenUidField) FromUser(data any) (any, error) {
	uid, err := parseUserHex(data)
	if err != nil {
		return nil, err
	}
	if !uid.Equal(nativeTokenUid) && len(uid) != codec.HashLength {
		return nil, fmt.Errorf("token uid must be the native uid %s or %d hex-encoded bytes: %w",
			nativeTokenUid, codec.HashLength, ErrUserInput)
	}
	return uid, nil
}
