package field

import (
	"fmt"
	"strings"

	"github.com/nanohq/nano-engine/pkg/codec"
)

// signedDataField carries a value together with the signature covering it.
// The contract-signed variant lays out a raw 32-byte producer id, the inner
// value, then the length-prefixed signature; the raw (caller-signed)
// variant omits the producer id.
type signedDataField struct {
	inner   Field
	subtype string
	raw     bool
}

func (f signedDataField) Decode(r *codec.Reader) (any, error) {
	result := SignedData{Type: f.subtype}
	if !f.raw {
		producer, err := r.ReadFixedBytes(codec.HashLength)
		if err != nil {
			return nil, err
		}
		result.ProducerID = producer
	}
	value, err := f.inner.Decode(r)
	if err != nil {
		return nil, err
	}
	result.Value = value
	signature, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	result.Signature = signature
	return result, nil
}

func (f signedDataField) Encode(w *codec.Writer, value any) error {
	data, ok := value.(SignedData)
	if !ok {
		return fmt.Errorf("expected signed data, got %T: %w", value, ErrWrongValueType)
	}
	if data.Type != f.subtype {
		return fmt.Errorf("signed data is for type %q, codec expects %q: %w", data.Type, f.subtype, ErrTypeMismatch)
	}
	if !f.raw {
		if len(data.ProducerID) != codec.HashLength {
			return fmt.Errorf("producer id must be %d bytes, got %d: %w",
				codec.HashLength, len(data.ProducerID), ErrWrongValueType)
		}
		w.WriteFixedBytes(data.ProducerID)
	}
	if err := f.inner.Encode(w, data.Value); err != nil {
		return err
	}
	return w.WriteBytes(data.Signature)
}

// ToUser renders the legacy flat form: "signature,[producerId,]value,type"
// with the signature and producer id in hex. Only inner types with a
// string user form can be rendered this way.
func (f signedDataField) ToUser(value any) (any, error) {
	data, ok := value.(SignedData)
	if !ok {
		return nil, fmt.Errorf("expected signed data, got %T: %w", value, ErrWrongValueType)
	}
	converted, err := f.inner.ToUser(data.Value)
	if err != nil {
		return nil, err
	}
	flat, ok := converted.(string)
	if !ok {
		return nil, fmt.Errorf("type %q has no flat signed-data form: %w", f.subtype, ErrWrongValueType)
	}
	parts := []string{data.Signature.String()}
	if !f.raw {
		parts = append(parts, data.ProducerID.String())
	}
	parts = append(parts, flat, f.subtype)
	return strings.Join(parts, ","), nil
}

func (f signedDataField) FromUser(data any) (any, error) {
	flat, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("cannot read %T as signed data: %w", data, ErrUserInput)
	}
	parts := strings.Split(flat, ",")
	head := 1
	if !f.raw {
		head = 2
	}
	// signature[, producer id], at least one value component, type
	if len(parts) < head+2 {
		return nil, fmt.Errorf("signed data needs at least %d comma-separated parts: %w", head+2, ErrArityMismatch)
	}
	declaredType := parts[len(parts)-1]
	if declaredType != f.subtype {
		return nil, fmt.Errorf("signed data declares type %q, codec expects %q: %w", declaredType, f.subtype, ErrTypeMismatch)
	}
	signature, err := parseUserHex(parts[0])
	if err != nil {
		return nil, err
	}
	result := SignedData{Type: f.subtype, Signature: signature}
	if !f.raw {
		producer, err := parseUserHex(parts[1])
		if err != nil {
			return nil, err
		}
		if len(producer) != codec.HashLength {
			return nil, fmt.Errorf("producer id must be %d hex-encoded bytes: %w", codec.HashLength, ErrUserInput)
		}
		result.ProducerID = producer
	}
	// the value itself may contain commas; everything between the header
	// and the type belongs to it
	value, err := f.inner.FromUser(strings.Join(parts[head:len(parts)-1], ","))
	if err != nil {
		return nil, err
	}
	result.Value = value
	return result, nil
}
