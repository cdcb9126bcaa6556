package field

import (
	"fmt"

	"github.com/nanohq/nano-engine/pkg/codec"
)

// strField carries UTF-8 strings as length-prefixed bytes.
type strField struct{}

func (strField) Decode(r *codec.Reader) (any, error) {
	result, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (strField) Encode(w *codec.Writer, value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T: %w", value, ErrWrongValueType)
	}
	return w.WriteString(str)
}

func (strField) ToUser(value any) (any, error) {
	str, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T: %w", value, ErrWrongValueType)
	}
	return str, nil
}

func (strField) FromUser(data any) (any, error) {
	str, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("cannot read %T as string: %w", data, ErrUserInput)
	}
	return str, nil
}

// boolField carries booleans as a strict one-byte tag.
type boolField struct{}

func (boolField) Decode(r *codec.Reader) (any, error) {
	result, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (boolField) Encode(w *codec.Writer, value any) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T: %w", value, ErrWrongValueType)
	}
	w.WriteBool(b)
	return nil
}

func (boolField) ToUser(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("expected bool, got %T: %w", value, ErrWrongValueType)
	}
	if b {
		return "true", nil
	}
	return "false", nil
}

func (boolField) FromUser(data any) (any, error) {
	switch value := data.(type) {
	case bool:
		return value, nil
	case string:
		switch value {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return nil, fmt.Errorf("cannot read %v (%T) as boolean: %w", data, data, ErrUserInput)
}

// bytesField carries opaque blobs as length-prefixed bytes. It also backs
// TxOutputScript.
type bytesField struct{}

func (bytesField) Decode(r *codec.Reader) (any, error) {
	result, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	return codec.Hex(result), nil
}

func (bytesField) Encode(w *codec.Writer, value any) error {
	raw, err := asBytes(value)
	if err != nil {
		return err
	}
	return w.WriteBytes(raw)
}

func (bytesField) ToUser(value any) (any, error) {
	raw, err := asBytes(value)
	if err != nil {
		return nil, err
	}
	return raw.String(), nil
}

func (bytesField) FromUser(data any) (any, error) {
	return parseUserHex(data)
}

// hashField carries fixed 32-byte identifiers with no length prefix. It
// backs ContractId, BlueprintId and VertexId.
type hashField struct{}

func (hashField) Decode(r *codec.Reader) (any, error) {
	result, err := r.ReadFixedBytes(codec.HashLength)
	if err != nil {
		return nil, err
	}
	return codec.Hex(result), nil
}

func (hashField) Encode(w *codec.Writer, value any) error {
	raw, err := asBytes(value)
	if err != nil {
		return err
	}
	if len(raw) != codec.HashLength {
		return fmt.Errorf("expected %d bytes, got %d: %w", codec.HashLength, len(raw), ErrWrongValueType)
	}
	w.WriteFixedBytes(raw)
	return nil
}

func (hashField) ToUser(value any) (any, error) {
	raw, err := asBytes(value)
	if err != nil {
		return nil, err
	}
	return raw.String(), nil
}

func (hashField) FromUser(data any) (any, error) {
	raw, err := parseUserHex(data)
	if err != nil {
		return nil, err
	}
	if len(raw) != codec.HashLength {
		return nil, fmt.Errorf("expected %d hex-encoded bytes, got %d: %w", codec.HashLength, len(raw), ErrUserInput)
	}
	return raw, nil
}
